package repository

import (
	"context"
	"testing"

	"student-api/internal/apperror"
	"student-api/internal/models"
	"student-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjectRepository_CreateAndList(t *testing.T) {
	repo := NewSubjectRepository(testutil.NewDB(t))
	ctx := context.Background()

	math := &models.Subject{Title: "Math", ImageURL: "m.png", Duration: "4h"}
	physics := &models.Subject{Title: "Physics"}
	require.NoError(t, repo.Create(ctx, math))
	require.NoError(t, repo.Create(ctx, physics))

	assert.NotZero(t, math.SubjectID)
	assert.NotEqual(t, math.SubjectID, physics.SubjectID)

	subjects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "Math", subjects[0].Title)
	assert.Equal(t, "m.png", subjects[0].ImageURL)
	assert.Equal(t, "4h", subjects[0].Duration)
	assert.Equal(t, "Physics", subjects[1].Title)
}

func TestSubjectRepository_CreateTopicForcesPathSubject(t *testing.T) {
	repo := NewSubjectRepository(testutil.NewDB(t))
	ctx := context.Background()

	math := &models.Subject{Title: "Math"}
	other := &models.Subject{Title: "Art"}
	require.NoError(t, repo.Create(ctx, math))
	require.NoError(t, repo.Create(ctx, other))

	topic := &models.Topic{Title: "Algebra", SubjectID: other.SubjectID}
	require.NoError(t, repo.CreateTopic(ctx, math.SubjectID, topic))

	assert.NotZero(t, topic.TopicID)
	assert.Equal(t, math.SubjectID, topic.SubjectID)
}

func TestSubjectRepository_CreateTopicMissingSubject(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewSubjectRepository(db)

	err := repo.CreateTopic(context.Background(), 42, &models.Topic{Title: "Orphan"})

	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	var count int64
	require.NoError(t, db.Model(&models.Topic{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubjectRepository_ListWithTopics(t *testing.T) {
	repo := NewSubjectRepository(testutil.NewDB(t))
	ctx := context.Background()

	math := &models.Subject{Title: "Math"}
	empty := &models.Subject{Title: "Empty"}
	require.NoError(t, repo.Create(ctx, math))
	require.NoError(t, repo.Create(ctx, empty))
	require.NoError(t, repo.CreateTopic(ctx, math.SubjectID, &models.Topic{Title: "Sets"}))
	require.NoError(t, repo.CreateTopic(ctx, math.SubjectID, &models.Topic{Title: "Groups"}))

	subjects, err := repo.ListWithTopics(ctx)
	require.NoError(t, err)
	require.Len(t, subjects, 2)

	require.Len(t, subjects[0].Topics, 2)
	assert.Equal(t, "Sets", subjects[0].Topics[0].Title)
	assert.Equal(t, "Groups", subjects[0].Topics[1].Title)
	assert.Empty(t, subjects[1].Topics)
}

func TestSubjectRepository_FindByID(t *testing.T) {
	repo := NewSubjectRepository(testutil.NewDB(t))
	ctx := context.Background()

	math := &models.Subject{Title: "Math"}
	require.NoError(t, repo.Create(ctx, math))

	found, err := repo.FindByID(ctx, math.SubjectID)
	require.NoError(t, err)
	assert.Equal(t, "Math", found.Title)

	_, err = repo.FindByID(ctx, math.SubjectID+1)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
