// file: internals/features/grades/service/grading_service_test.go
package service

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPercentageZeroGuard(t *testing.T) {
	if got := Percentage(10, 0); got != 0 {
		t.Fatalf("max 0 harus menghasilkan 0, dapat %v", got)
	}
	if got := Percentage(0, 0); got != 0 {
		t.Fatalf("0/0 harus menghasilkan 0, dapat %v", got)
	}
	if got := Percentage(45, 60); !almostEqual(got, 75) {
		t.Fatalf("45/60 harus 75%%, dapat %v", got)
	}
}

func TestRemarkBoundaries(t *testing.T) {
	cases := []struct {
		avg  float64
		want string
	}{
		{0, RemarkPoor},
		{49.99, RemarkPoor},
		{50, RemarkSatisfactory},
		{69.99, RemarkSatisfactory},
		{70, RemarkGood},
		{100, RemarkGood},
	}
	for _, c := range cases {
		if got := Remark(c.avg); got != c.want {
			t.Errorf("Remark(%v) = %q, mau %q", c.avg, got, c.want)
		}
	}
}

func TestAggregateBySubject(t *testing.T) {
	pairs := []ScorePair{
		{SubjectName: "Mathematics", Achieved: 40, MaxScore: 50},
		{SubjectName: "English", Achieved: 30, MaxScore: 60},
		{SubjectName: "Mathematics", Achieved: 35, MaxScore: 50},
	}

	results := AggregateBySubject(pairs)
	if len(results) != 2 {
		t.Fatalf("harus 2 mapel, dapat %d", len(results))
	}

	// urutan mengikuti kemunculan pertama
	math1 := results[0]
	if math1.SubjectName != "Mathematics" {
		t.Fatalf("mapel pertama harus Mathematics, dapat %q", math1.SubjectName)
	}
	if !almostEqual(math1.Achieved, 75) || !almostEqual(math1.MaxTotal, 100) {
		t.Fatalf("agregat Mathematics salah: %+v", math1)
	}
	if !almostEqual(math1.Percent, 75) || math1.Remark != RemarkGood {
		t.Fatalf("persen/remark Mathematics salah: %+v", math1)
	}

	eng := results[1]
	if !almostEqual(eng.Percent, 50) || eng.Remark != RemarkSatisfactory {
		t.Fatalf("persen/remark English salah: %+v", eng)
	}
}

func TestBuildReportCard(t *testing.T) {
	pairs := []ScorePair{
		{SubjectName: "Mathematics", Achieved: 30, MaxScore: 100},
		{SubjectName: "English", Achieved: 45, MaxScore: 100},
	}

	card := BuildReportCard("Siti Aminah", "Grade 4A", "Term 1 2026", pairs)
	if card.StudentName != "Siti Aminah" || card.TermName != "Term 1 2026" {
		t.Fatalf("identitas rapor salah: %+v", card)
	}
	if !almostEqual(card.OverallPercent, 37.5) {
		t.Fatalf("overall harus 37.5, dapat %v", card.OverallPercent)
	}
	if card.OverallRemark != RemarkPoor {
		t.Fatalf("overall remark harus %q, dapat %q", RemarkPoor, card.OverallRemark)
	}
}

func TestBuildReportCardEmpty(t *testing.T) {
	card := BuildReportCard("Budi", "", "Term 1", nil)
	if card.OverallPercent != 0 {
		t.Fatalf("tanpa nilai harus 0%%, dapat %v", card.OverallPercent)
	}
	if len(card.Subjects) != 0 {
		t.Fatalf("tanpa nilai harus tanpa mapel, dapat %d", len(card.Subjects))
	}
}
