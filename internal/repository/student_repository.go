package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"student-api/internal/apperror"
	"student-api/internal/database"
	"student-api/internal/models"

	"gorm.io/gorm"
)

type StudentRepository interface {
	ListWithSubjectIDs(ctx context.Context) ([]models.StudentSummary, error)
	FindWithCompletedTopics(ctx context.Context, studentID int) (*models.Student, error)
	Exists(ctx context.Context, studentID int) (bool, error)
	Create(ctx context.Context, student *models.Student, subjectIDs []int) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// studentSubjectRow is one row of the students LEFT JOIN student_subjects projection.
type studentSubjectRow struct {
	StudentID  int    `gorm:"column:studentid"`
	FirstName  string `gorm:"column:firstname"`
	SecondName string `gorm:"column:secondname"`
	Title      string `gorm:"column:title"`
	Email      string `gorm:"column:email"`
	SubjectID  *int   `gorm:"column:subjectid"`
}

func (r *studentRepository) ListWithSubjectIDs(ctx context.Context) ([]models.StudentSummary, error) {
	var rows []studentSubjectRow
	err := r.db.WithContext(ctx).
		Table("students AS s").
		Select("s.studentid, s.firstname, s.secondname, s.title, s.email, ss.subjectid").
		Joins("LEFT JOIN student_subjects AS ss ON ss.studentid = s.studentid").
		Order("s.studentid ASC, ss.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, database.Classify(err)
	}

	students := make([]models.StudentSummary, 0)
	for _, row := range rows {
		n := len(students)
		if n == 0 || students[n-1].StudentID != row.StudentID {
			students = append(students, models.StudentSummary{
				StudentID:  row.StudentID,
				FirstName:  row.FirstName,
				SecondName: row.SecondName,
				Title:      row.Title,
				Email:      row.Email,
				SubjectIDs: []int{},
			})
			n++
		}
		if row.SubjectID != nil {
			students[n-1].SubjectIDs = append(students[n-1].SubjectIDs, *row.SubjectID)
		}
	}
	return students, nil
}

func (r *studentRepository) FindWithCompletedTopics(ctx context.Context, studentID int) (*models.Student, error) {
	var student models.Student
	err := r.db.WithContext(ctx).
		Preload("CompletedTopics", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Where("studentid = ?", studentID).
		First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Student with Id %d not found.", studentID)
		}
		return nil, database.Classify(err)
	}
	return &student, nil
}

func (r *studentRepository) Exists(ctx context.Context, studentID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Student{}).Where("studentid = ?", studentID).Count(&count).Error
	if err != nil {
		return false, database.Classify(err)
	}
	return count > 0, nil
}

// Create inserts the student and its enrollments in one transaction. Unknown subject ids
// abort the whole operation with a validation error naming every one of them.
func (r *studentRepository) Create(ctx context.Context, student *models.Student, subjectIDs []int) error {
	ids := distinct(subjectIDs)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(ids) > 0 {
			var found []int
			if err := tx.Model(&models.Subject{}).Where("subjectid IN ?", ids).Pluck("subjectid", &found).Error; err != nil {
				return err
			}
			if missing := missingIDs(ids, found); len(missing) > 0 {
				return apperror.Validation("Subjects with Ids %s do not exist.", joinIDs(missing))
			}
		}

		if err := tx.Omit("CompletedTopics", "Subjects").Create(student).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		links := make([]models.StudentSubject, 0, len(ids))
		for _, id := range ids {
			links = append(links, models.StudentSubject{StudentID: student.StudentID, SubjectID: id})
		}
		return tx.Create(&links).Error
	})
	if err != nil {
		student.StudentID = 0
		return database.Classify(err)
	}
	return nil
}

// distinct drops repeated ids, keeping first occurrences in order.
func distinct(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func missingIDs(want, found []int) []int {
	present := make(map[int]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}
	var missing []int
	for _, id := range want {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
