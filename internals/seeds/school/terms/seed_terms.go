package terms

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"schoolku_backend/internals/features/school/terms/model"
)

// SeedDefaultTerm membuat satu academic term current untuk instalasi baru.
// Tidak melakukan apa-apa kalau tabel sudah terisi.
func SeedDefaultTerm(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.AcademicTermModel{}).Count(&count).Error; err != nil {
		log.Printf("❌ Gagal cek academic_terms: %v", err)
		return
	}
	if count > 0 {
		log.Println("ℹ️ Academic term sudah ada, seed dilewati.")
		return
	}

	now := time.Now().UTC()
	year := now.Year()
	// semester ganjil mulai Juli; sebelum Juli berarti semester genap tahun ajaran berjalan
	var term model.AcademicTermModel
	if now.Month() >= time.July {
		term = model.AcademicTermModel{
			AcademicTermName:      formatTermName("Ganjil", year, year+1),
			AcademicTermStartDate: time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC),
			AcademicTermEndDate:   time.Date(year, time.December, 20, 0, 0, 0, 0, time.UTC),
			AcademicTermIsCurrent: true,
		}
	} else {
		term = model.AcademicTermModel{
			AcademicTermName:      formatTermName("Genap", year-1, year),
			AcademicTermStartDate: time.Date(year, time.January, 5, 0, 0, 0, 0, time.UTC),
			AcademicTermEndDate:   time.Date(year, time.June, 20, 0, 0, 0, 0, time.UTC),
			AcademicTermIsCurrent: true,
		}
	}

	if err := db.Create(&term).Error; err != nil {
		log.Printf("❌ Gagal seed academic term: %v", err)
		return
	}
	log.Printf("✅ Academic term '%s' berhasil dibuat.", term.AcademicTermName)
}

func formatTermName(semester string, fromYear, toYear int) string {
	return fmt.Sprintf("Semester %s %d/%d", semester, fromYear, toYear)
}
