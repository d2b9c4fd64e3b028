// file: internals/features/grades/service/grading_service.go
package service

import "strings"

// Remark tiers mengikuti rapor sekolah: batas atas masuk tier berikutnya.
const (
	RemarkPoor         = "Needs significant improvement."
	RemarkSatisfactory = "Satisfactory performance."
	RemarkGood         = "Good performance."
)

// SubjectResult adalah agregat nilai satu mapel dalam satu term.
type SubjectResult struct {
	SubjectName string  `json:"subject_name"`
	Achieved    float64 `json:"achieved"`
	MaxTotal    float64 `json:"max_total"`
	Percent     float64 `json:"percent"`
	Remark      string  `json:"remark"`
}

// ReportCard adalah hasil rakitan rapor satu siswa satu term.
type ReportCard struct {
	StudentName    string          `json:"student_name"`
	ClassName      string          `json:"class_name,omitempty"`
	TermName       string          `json:"term_name"`
	Subjects       []SubjectResult `json:"subjects"`
	OverallPercent float64         `json:"overall_percent"`
	OverallRemark  string          `json:"overall_remark"`
}

// Percentage menghitung sum(achieved)/sum(max) * 100.
// Total max 0 (belum ada assignment) menghasilkan 0, bukan division by zero.
func Percentage(achieved, maxTotal float64) float64 {
	if maxTotal <= 0 {
		return 0
	}
	return achieved / maxTotal * 100
}

// Remark memetakan rata-rata persen ke komentar rapor.
// avg < 50 buruk, 50 <= avg < 70 cukup, avg >= 70 baik.
func Remark(avg float64) string {
	switch {
	case avg < 50:
		return RemarkPoor
	case avg < 70:
		return RemarkSatisfactory
	default:
		return RemarkGood
	}
}

// ScorePair adalah satu nilai tercatat beserta max assignment-nya.
type ScorePair struct {
	SubjectName string
	Achieved    float64
	MaxScore    float64
}

// AggregateBySubject merangkum pasangan nilai per mapel, urut nama mapel
// sesuai kemunculan pertama.
func AggregateBySubject(pairs []ScorePair) []SubjectResult {
	order := make([]string, 0)
	bucket := make(map[string]*SubjectResult)

	for _, p := range pairs {
		key := strings.TrimSpace(p.SubjectName)
		r, ok := bucket[key]
		if !ok {
			r = &SubjectResult{SubjectName: key}
			bucket[key] = r
			order = append(order, key)
		}
		r.Achieved += p.Achieved
		r.MaxTotal += p.MaxScore
	}

	out := make([]SubjectResult, 0, len(order))
	for _, key := range order {
		r := bucket[key]
		r.Percent = Percentage(r.Achieved, r.MaxTotal)
		r.Remark = Remark(r.Percent)
		out = append(out, *r)
	}
	return out
}

// BuildReportCard merakit rapor dari pasangan nilai mentah.
func BuildReportCard(studentName, className, termName string, pairs []ScorePair) ReportCard {
	subjects := AggregateBySubject(pairs)

	var achieved, maxTotal float64
	for _, s := range subjects {
		achieved += s.Achieved
		maxTotal += s.MaxTotal
	}
	overall := Percentage(achieved, maxTotal)

	return ReportCard{
		StudentName:    studentName,
		ClassName:      className,
		TermName:       termName,
		Subjects:       subjects,
		OverallPercent: overall,
		OverallRemark:  Remark(overall),
	}
}
