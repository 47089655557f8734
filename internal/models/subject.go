package models

/** --------------------ENTITIES-------------------- */
// Subject is a lecture group; it owns its topics.
type Subject struct {
	SubjectID int    `gorm:"column:subjectid;primaryKey;autoIncrement" json:"subjectId"`
	Title     string `gorm:"column:title;not null" json:"title"`
	ImageURL  string `gorm:"column:imageurl" json:"imageUrl"`
	Duration  string `gorm:"column:duration" json:"duration"`

	Topics      []Topic          `gorm:"foreignKey:SubjectID;references:SubjectID" json:"-"`
	Enrollments []StudentSubject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"-"`
}

func (Subject) TableName() string { return "subjects" }

type Topic struct {
	TopicID   int    `gorm:"column:topicid;primaryKey;autoIncrement" json:"topicId"`
	Title     string `gorm:"column:title;not null" json:"title"`
	SubjectID int    `gorm:"column:subjectid;not null;index" json:"subjectId"`

	Completions []CompletedTopic `gorm:"foreignKey:TopicID;references:TopicID" json:"-"`
}

func (Topic) TableName() string { return "topics" }

/** -------------------- DTOs -------------------- */
// Request
type CreateSubjectRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	ImageURL string `json:"imageUrl" binding:"max=2048"`
	Duration string `json:"duration" binding:"max=255"`
}

// CreateTopicRequest may carry a subjectId; the path parameter always wins.
type CreateTopicRequest struct {
	Title     string `json:"title" binding:"required,max=255"`
	SubjectID int    `json:"subjectId"`
}

// Response
type SubjectResponse struct {
	SubjectID int    `json:"subjectId"`
	Title     string `json:"title"`
	ImageURL  string `json:"imageUrl"`
	Duration  string `json:"duration"`
}

type TopicResponse struct {
	TopicID   int    `json:"topicId"`
	Title     string `json:"title"`
	SubjectID int    `json:"subjectId"`
}

// LectureResponse is a subject with its topics, as served by /api/lectures.
type LectureResponse struct {
	SubjectID int            `json:"subjectId"`
	Title     string         `json:"title"`
	ImageURL  string         `json:"imageUrl"`
	Duration  string         `json:"duration"`
	Topics    []LectureTopic `json:"topics"`
}

type LectureTopic struct {
	TopicID int    `json:"topicId"`
	Title   string `json:"title"`
}

type ImageUploadResponse struct {
	ImageURL string `json:"imageUrl"`
}

func NewSubjectResponse(s *Subject) SubjectResponse {
	return SubjectResponse{
		SubjectID: s.SubjectID,
		Title:     s.Title,
		ImageURL:  s.ImageURL,
		Duration:  s.Duration,
	}
}

func NewTopicResponse(t *Topic) TopicResponse {
	return TopicResponse{TopicID: t.TopicID, Title: t.Title, SubjectID: t.SubjectID}
}

func NewLectureResponse(s *Subject) LectureResponse {
	topics := make([]LectureTopic, 0, len(s.Topics))
	for _, t := range s.Topics {
		topics = append(topics, LectureTopic{TopicID: t.TopicID, Title: t.Title})
	}
	return LectureResponse{
		SubjectID: s.SubjectID,
		Title:     s.Title,
		ImageURL:  s.ImageURL,
		Duration:  s.Duration,
		Topics:    topics,
	}
}
