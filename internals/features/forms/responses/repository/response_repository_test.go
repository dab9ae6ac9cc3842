package repository

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	formModel "formku_backend/internals/features/forms/forms/model"
	formRepo "formku_backend/internals/features/forms/forms/repository"
	"formku_backend/internals/features/forms/formtest/sqlitedb"
	responseModel "formku_backend/internals/features/forms/responses/model"
)

func seedForm(t *testing.T, db *gorm.DB, active bool) *formModel.FormModel {
	t.Helper()
	m := &formModel.FormModel{
		FormID:       uuid.New(),
		FormOwnerID:  uuid.New(),
		FormTitle:    "Feedback",
		FormIsActive: active,
		Questions: []formModel.FormQuestionModel{
			{FormQuestionID: uuid.New(), FormQuestionType: formModel.QuestionTypeText, FormQuestionText: "Nama", FormQuestionRequired: true},
		},
	}
	require.NoError(t, formRepo.NewFormRepository(db).Create(context.Background(), m))
	return m
}

func newResponse(formID uuid.UUID, answer string) *responseModel.FormResponseModel {
	return responseModel.NewFormResponse(formID, responseModel.Answers{"nama": answer}, responseModel.SubmitterMeta{IPAddress: "10.0.0.1"})
}

func storedCount(t *testing.T, db *gorm.DB, formID uuid.UUID) int {
	t.Helper()
	var f formModel.FormModel
	require.NoError(t, db.Select("form_response_count").Where("form_id = ?", formID).First(&f).Error)
	return f.FormResponseCount
}

func TestCreateWithCounter_Concurrent(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := NewResponseRepository(db)
	form := seedForm(t, db, true)

	const n = 20
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		counts []int
		errs   []error
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := repo.CreateWithCounter(context.Background(), newResponse(form.FormID, "x"))
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			counts = append(counts, c)
		}()
	}
	wg.Wait()

	require.Empty(t, errs)
	sort.Ints(counts)
	want := make([]int, n)
	for i := range want {
		want[i] = i + 1
	}
	assert.Equal(t, want, counts)
	assert.Equal(t, n, storedCount(t, db, form.FormID))

	rows, err := repo.ListByForm(context.Background(), form.FormID)
	require.NoError(t, err)
	assert.Len(t, rows, n)
}

func TestCreateWithCounter_SingleAtomicUpdate(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := NewResponseRepository(db)
	form := seedForm(t, db, true)
	rec := sqlitedb.Record(t, db)

	c, err := repo.CreateWithCounter(context.Background(), newResponse(form.FormID, "x"))
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	// counter dinaikkan di dalam UPDATE itu sendiri, nilai baru dibaca lewat RETURNING
	upd := rec.Matching("UPDATE", "forms", "form_response_count + ", "RETURNING", "form_is_active")
	assert.Len(t, upd, 1)
	assert.Empty(t, rec.Matching("SELECT", "forms"))
	assert.Len(t, rec.Matching("INSERT", "form_responses"), 1)
}

func TestCreateWithCounter_InactiveOrMissingForm(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := NewResponseRepository(db)
	ctx := context.Background()
	inactive := seedForm(t, db, false)

	_, err := repo.CreateWithCounter(ctx, newResponse(inactive.FormID, "x"))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.CreateWithCounter(ctx, newResponse(uuid.New(), "x"))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var n int64
	require.NoError(t, db.Model(&responseModel.FormResponseModel{}).Count(&n).Error)
	assert.Zero(t, n)
	assert.Zero(t, storedCount(t, db, inactive.FormID))
}

func TestListByForm_OnlyThatForm(t *testing.T) {
	db := sqlitedb.Open(t)
	repo := NewResponseRepository(db)
	ctx := context.Background()
	a := seedForm(t, db, true)
	b := seedForm(t, db, true)

	_, err := repo.CreateWithCounter(ctx, newResponse(a.FormID, "Ana"))
	require.NoError(t, err)
	_, err = repo.CreateWithCounter(ctx, newResponse(b.FormID, "Budi"))
	require.NoError(t, err)

	rows, err := repo.ListByForm(ctx, a.FormID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].AnswerMap()["nama"])
	require.NotNil(t, rows[0].FormResponseIPAddress)
	assert.Equal(t, "10.0.0.1", *rows[0].FormResponseIPAddress)
}
