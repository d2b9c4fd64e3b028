// file: internals/features/attendance/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/attendance/attendance/model"
)

/* ========== REQUEST ========== */

type AttendanceBatchEntryDTO struct {
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceStatus    string    `json:"attendance_status" validate:"required,oneof=P A L E"`
}

// AttendanceBatchDTO: absensi satu kelas satu tanggal sekali kirim.
type AttendanceBatchDTO struct {
	AttendanceClassID uuid.UUID                 `json:"attendance_class_id" validate:"required"`
	AttendanceDate    string                    `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	Entries           []AttendanceBatchEntryDTO `json:"entries" validate:"required,min=1,dive"`
}

/* ========== RESPONSE ========== */

type AttendanceResponseDTO struct {
	AttendanceID           uuid.UUID `json:"attendance_id"`
	AttendanceStudentID    uuid.UUID `json:"attendance_student_id"`
	AttendanceClassID      uuid.UUID `json:"attendance_class_id"`
	AttendanceDate         string    `json:"attendance_date"`
	AttendanceStatus       string    `json:"attendance_status"`
	AttendanceRecordedByID uuid.UUID `json:"attendance_recorded_by_id"`
	AttendanceUpdatedAt    time.Time `json:"attendance_updated_at"`
}

func FromModel(m model.AttendanceModel) AttendanceResponseDTO {
	return AttendanceResponseDTO{
		AttendanceID:           m.AttendanceID,
		AttendanceStudentID:    m.AttendanceStudentID,
		AttendanceClassID:      m.AttendanceClassID,
		AttendanceDate:         m.AttendanceDate.Format("2006-01-02"),
		AttendanceStatus:       m.AttendanceStatus,
		AttendanceRecordedByID: m.AttendanceRecordedByID,
		AttendanceUpdatedAt:    m.AttendanceUpdatedAt,
	}
}

func FromModels(ms []model.AttendanceModel) []AttendanceResponseDTO {
	out := make([]AttendanceResponseDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
