package domain

// Role is the single workflow role an account carries. Role changes are an
// administrative operation, never part of a workflow action.
type Role string

const (
	RoleStationSupervisor  = Role("station_supervisor")
	RoleProcessEngineer    = Role("process_engineer")
	RoleEngineeringManager = Role("engineering_manager")
	RoleProductManager     = Role("product_manager")
	RoleOperationsManager  = Role("operations_manager")
	RoleQaManager          = Role("qa_manager")
	RoleMarketingManager   = Role("marketing_manager")
	RoleProductionControl  = Role("production_control")
	RoleAdmin              = Role("admin")
)

var AllRoles = []Role{
	RoleStationSupervisor, RoleProcessEngineer, RoleEngineeringManager,
	RoleProductManager, RoleOperationsManager, RoleQaManager,
	RoleMarketingManager, RoleProductionControl, RoleAdmin,
}

func IsValidRole(r Role) bool {
	for _, v := range AllRoles {
		if v == r {
			return true
		}
	}
	return false
}
