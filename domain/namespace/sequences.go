package namespace

import (
	"errors"
	"fmt"

	"ncrtrack/bizerror"

	"github.com/jinzhu/gorm"
)

const ncrSequenceName = "ncr"

// Sequence is a guarded counter row, one per named number range.
type Sequence struct {
	Name      string `json:"name" gorm:"primary_key"`
	NextValue int64  `json:"nextValue"`
}

var NextNCRNumberFunc = NextNCRNumber

// NextNCRNumber consumes the next value of the NCR number range inside the
// caller's transaction. The guarded update makes concurrent consumers retry
// instead of handing out the same number twice.
func NextNCRNumber(tx *gorm.DB) (string, error) {
	seq := Sequence{Name: ncrSequenceName}
	if err := tx.Where(&Sequence{Name: ncrSequenceName}).First(&seq).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
		seq.NextValue = 1
		if err := tx.Create(&seq).Error; err != nil {
			return "", err
		}
	}

	number := fmt.Sprintf("NCR-%06d", seq.NextValue)
	db := tx.Model(&Sequence{}).Where(&Sequence{Name: ncrSequenceName, NextValue: seq.NextValue}).
		Update("next_value", seq.NextValue+1)
	if db.Error != nil {
		return "", db.Error
	}
	if db.RowsAffected != 1 {
		return "", bizerror.ErrStaleCase
	}
	return number, nil
}
