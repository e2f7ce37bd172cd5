package model

import (
	"time"

	"gorm.io/gorm"
)

// Seed fills an empty catalog with the starter books. A catalog that already
// holds records is left untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Book{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	books := []Book{
		{
			Title:       "CQRS for Dummies",
			BookID:      "9b0896fa-3880-4c2e-bfd6-925c87f22878",
			ReleaseDate: date(2019, time.February, 5),
			Category:    "Programming",
			Price:       80.99,
			Status:      StatusAvailable,
		},
		{
			Title:       "Visual Studio Tips",
			BookID:      "0550818d-36ad-4a8d-9c3a-a715bf15de76",
			ReleaseDate: date(2021, time.January, 15),
			Category:    "Programming",
			Price:       50.04,
			Status:      StatusAvailable,
		},
		{
			Title:       "NHibernate Cookbook",
			BookID:      "8e0f11f1-be5c-4dbc-8012-c19ce8cbe8e1",
			ReleaseDate: date(2017, time.January, 27),
			Category:    "Programming",
			Price:       158.38,
			Status:      StatusAvailable,
		},
	}

	return db.Create(&books).Error
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}
