// file: internals/helpers/slug_test.go
package helper

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"Matematika Dasar", 0, "matematika-dasar"},
		{"  Bahasa   Indonesia!  ", 0, "bahasa-indonesia"},
		{"Éducation Física", 0, "education-fisica"},
		{"---", 0, "item"},
		{"", 0, "item"},
		{"IPA Terpadu Kelas 7", 10, "ipa-terpad"},
		{"A+B=C", 0, "a-b-c"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in, tc.maxLen); got != tc.want {
			t.Errorf("Slugify(%q, %d) = %q, harus %q", tc.in, tc.maxLen, got, tc.want)
		}
	}
}

type slugRow struct {
	ID   uint   `gorm:"primaryKey"`
	Slug string `gorm:"column:subject_slug"`
}

func (slugRow) TableName() string { return "subjects" }

func TestEnsureUniqueSlugSuffixes(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(&slugRow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()

	got, err := EnsureUniqueSlug(ctx, db, "subjects", "subject_slug", "matematika", nil)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if got != "matematika" {
		t.Fatalf("tanpa bentrok harus slug asli, dapat %q", got)
	}

	db.Create(&slugRow{Slug: "matematika"})
	got, err = EnsureUniqueSlug(ctx, db, "subjects", "subject_slug", "matematika", nil)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if got != "matematika-2" {
		t.Fatalf("bentrok pertama harus -2, dapat %q", got)
	}

	db.Create(&slugRow{Slug: "matematika-2"})
	got, err = EnsureUniqueSlug(ctx, db, "subjects", "subject_slug", "matematika", nil)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if got != "matematika-3" {
		t.Fatalf("bentrok kedua harus -3, dapat %q", got)
	}
}

func TestEnsureUniqueSlugScopeExcludesSelf(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(&slugRow{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	row := slugRow{Slug: "fisika"}
	db.Create(&row)

	// saat update, baris sendiri dikecualikan supaya slug tidak berganti
	got, err := EnsureUniqueSlug(context.Background(), db, "subjects", "subject_slug", "fisika",
		func(q *gorm.DB) *gorm.DB { return q.Where("id <> ?", row.ID) })
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if got != "fisika" {
		t.Fatalf("baris sendiri harus dikecualikan, dapat %q", got)
	}
}
