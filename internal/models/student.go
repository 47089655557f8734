package models

import (
	"gorm.io/datatypes"
)

/** --------------------ENTITIES-------------------- */
// Student represents a learner
type Student struct {
	StudentID  int            `gorm:"column:studentid;primaryKey;autoIncrement" json:"studentId"`
	FirstName  string         `gorm:"column:firstname;not null" json:"firstName"`
	SecondName string         `gorm:"column:secondname;not null" json:"secondName"`
	Dob        datatypes.Date `gorm:"column:dob" json:"dob"`
	Title      string         `gorm:"column:title" json:"title"`
	Email      string         `gorm:"column:email" json:"email"`

	CompletedTopics []CompletedTopic `gorm:"foreignKey:StudentID;references:StudentID" json:"-"`
	Subjects        []StudentSubject `gorm:"foreignKey:StudentID;references:StudentID" json:"-"`
}

func (Student) TableName() string { return "students" }

// CompletedTopic records whether a student finished a topic. One row per (student, topic).
type CompletedTopic struct {
	ID         int  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentID  int  `gorm:"column:studentid;not null;uniqueIndex:idx_completedtopics_student_topic" json:"studentId"`
	TopicID    int  `gorm:"column:topicid;not null;uniqueIndex:idx_completedtopics_student_topic" json:"topicId"`
	IsComplete bool `gorm:"column:iscomplete;not null" json:"isComplete"`
}

func (CompletedTopic) TableName() string { return "completedtopics" }

// StudentSubject is the enrollment link between a student and a subject.
type StudentSubject struct {
	ID        int `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StudentID int `gorm:"column:studentid;not null;uniqueIndex:idx_student_subjects_pair" json:"studentId"`
	SubjectID int `gorm:"column:subjectid;not null;uniqueIndex:idx_student_subjects_pair" json:"subjectId"`
}

func (StudentSubject) TableName() string { return "student_subjects" }

/** -------------------- DTOs -------------------- */
// Request
type CreateStudentRequest struct {
	FirstName  string `json:"firstName" binding:"required,max=255"`
	SecondName string `json:"secondName" binding:"required,max=255"`
	Title      string `json:"title" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Dob        string `json:"dob" binding:"required"` // YYYY-MM-DD or RFC3339
	SubjectIDs []int  `json:"subjectIds"`
}

// UpdateTopicStatusRequest is validated by the service so that an unknown student
// reports 404 before a bad topic id reports 400.
type UpdateTopicStatusRequest struct {
	TopicID    int  `json:"topicId"`
	IsComplete bool `json:"isComplete"`
}

// Response
type StudentSummary struct {
	StudentID  int    `json:"studentId"`
	FirstName  string `json:"firstName"`
	SecondName string `json:"secondName"`
	Title      string `json:"title"`
	Email      string `json:"email"`
	SubjectIDs []int  `json:"subjectIds"`
}

type StudentProgressResponse struct {
	StudentID int           `json:"studentId"`
	Topics    []TopicStatus `json:"topics"`
}

type TopicStatus struct {
	TopicID    int  `json:"topicId"`
	IsComplete bool `json:"isComplete"`
}

func NewStudentProgressResponse(s *Student) StudentProgressResponse {
	topics := make([]TopicStatus, 0, len(s.CompletedTopics))
	for _, ct := range s.CompletedTopics {
		topics = append(topics, TopicStatus{TopicID: ct.TopicID, IsComplete: ct.IsComplete})
	}
	return StudentProgressResponse{StudentID: s.StudentID, Topics: topics}
}
