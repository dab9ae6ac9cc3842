package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	formDTO "formku_backend/internals/features/forms/forms/dto"
	formModel "formku_backend/internals/features/forms/forms/model"
	"formku_backend/internals/features/forms/formtest"
	helper "formku_backend/internals/helpers"
)

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }
func newSvc() *FormService { return NewFormService(formtest.NewStore()) }
func q(text string) formDTO.QuestionRequest {
	return formDTO.QuestionRequest{Type: "text", Question: text}
}

func createForm(t *testing.T, svc *FormService, owner uuid.UUID, title string, qs ...formDTO.QuestionRequest) *formModel.FormModel {
	t.Helper()
	m, err := svc.Create(context.Background(), owner, formDTO.CreateFormRequest{Title: title, Questions: qs})
	require.NoError(t, err)
	return m
}

func TestCreate_Defaults(t *testing.T) {
	svc := newSvc()
	owner := uuid.New()

	m := createForm(t, svc, owner, "  Feedback  ", q("How was it?"))

	assert.Equal(t, "Feedback", m.FormTitle)
	assert.Equal(t, owner, m.FormOwnerID)
	assert.True(t, m.FormIsActive)
	assert.Zero(t, m.FormResponseCount)
	require.Len(t, m.Questions, 1)
	assert.True(t, m.Questions[0].FormQuestionRequired)
	assert.Equal(t, formModel.QuestionTypeText, m.Questions[0].FormQuestionType)
	assert.NotEqual(t, uuid.Nil, m.Questions[0].FormQuestionID)
}

func TestCreate_ExplicitInactive(t *testing.T) {
	svc := newSvc()
	m, err := svc.Create(context.Background(), uuid.New(), formDTO.CreateFormRequest{
		Title:     "Draft",
		Questions: []formDTO.QuestionRequest{q("a")},
		IsActive:  boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, m.FormIsActive)
}

func TestCreate_FiltersBlankQuestions(t *testing.T) {
	svc := newSvc()

	m := createForm(t, svc, uuid.New(), "F",
		q("   "),
		q("kept one"),
		formDTO.QuestionRequest{Type: "multiple-choice", Text: "Pick", Options: []string{" a ", "", "b"}, Required: boolPtr(false)},
		q(""),
	)

	require.Len(t, m.Questions, 2)
	assert.Equal(t, "kept one", m.Questions[0].FormQuestionText)
	assert.Equal(t, 0, m.Questions[0].FormQuestionPosition)

	mc := m.Questions[1]
	assert.Equal(t, "Pick", mc.FormQuestionText)
	assert.Equal(t, 1, mc.FormQuestionPosition)
	assert.Equal(t, []string{"a", "b"}, []string(mc.FormQuestionOptions))
	assert.False(t, mc.FormQuestionRequired)
}

func TestCreate_TextQuestionDropsOptions(t *testing.T) {
	svc := newSvc()
	m := createForm(t, svc, uuid.New(), "F",
		formDTO.QuestionRequest{Type: "text", Question: "Name", Options: []string{"x"}})
	assert.Empty(t, m.Questions[0].FormQuestionOptions)
}

func TestCreate_Validation(t *testing.T) {
	svc := newSvc()
	owner := uuid.New()
	ctx := context.Background()

	cases := map[string]formDTO.CreateFormRequest{
		"blank title":          {Title: "  ", Questions: []formDTO.QuestionRequest{q("a")}},
		"no questions":         {Title: "T"},
		"only blank questions": {Title: "T", Questions: []formDTO.QuestionRequest{q(" "), q("")}},
		"unknown type":         {Title: "T", Questions: []formDTO.QuestionRequest{{Type: "checkbox", Question: "a"}}},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(ctx, owner, in)
			assert.ErrorIs(t, err, helper.ErrValidation)
		})
	}

	list, err := svc.List(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNilOwnerIsUnauthenticated(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()
	id := uuid.New()

	_, err := svc.List(ctx, uuid.Nil)
	assert.ErrorIs(t, err, helper.ErrUnauthenticated)
	_, err = svc.Get(ctx, uuid.Nil, id)
	assert.ErrorIs(t, err, helper.ErrUnauthenticated)
	_, err = svc.Create(ctx, uuid.Nil, formDTO.CreateFormRequest{Title: "T", Questions: []formDTO.QuestionRequest{q("a")}})
	assert.ErrorIs(t, err, helper.ErrUnauthenticated)
	_, err = svc.Update(ctx, uuid.Nil, id, formDTO.UpdateFormRequest{})
	assert.ErrorIs(t, err, helper.ErrUnauthenticated)
	assert.ErrorIs(t, svc.Delete(ctx, uuid.Nil, id), helper.ErrUnauthenticated)
}

func TestOwnershipIsolation(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	f := createForm(t, svc, alice, "Alice form", q("a"))

	list, err := svc.List(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.Get(ctx, bob, f.FormID)
	assert.ErrorIs(t, err, helper.ErrNotFound)

	_, err = svc.Update(ctx, bob, f.FormID, formDTO.UpdateFormRequest{Title: strPtr("hijack")})
	assert.ErrorIs(t, err, helper.ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, bob, f.FormID), helper.ErrNotFound)

	got, err := svc.Get(ctx, alice, f.FormID)
	require.NoError(t, err)
	assert.Equal(t, "Alice form", got.FormTitle)
}

func TestList_NewestFirst(t *testing.T) {
	svc := newSvc()
	owner := uuid.New()
	first := createForm(t, svc, owner, "first", q("a"))
	second := createForm(t, svc, owner, "second", q("a"))
	createForm(t, svc, uuid.New(), "someone else", q("a"))

	list, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.FormID, list[0].FormID)
	assert.Equal(t, first.FormID, list[1].FormID)
}

func TestGetPublic_InactiveIsNotFound(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()
	owner := uuid.New()
	f := createForm(t, svc, owner, "F", q("a"))

	got, err := svc.GetPublic(ctx, f.FormID)
	require.NoError(t, err)
	assert.Equal(t, f.FormID, got.FormID)

	_, err = svc.Update(ctx, owner, f.FormID, formDTO.UpdateFormRequest{IsActive: boolPtr(false)})
	require.NoError(t, err)

	_, err = svc.GetPublic(ctx, f.FormID)
	assert.ErrorIs(t, err, helper.ErrNotFound)

	_, err = svc.GetPublic(ctx, uuid.New())
	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestUpdate_PatchSemantics(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()
	owner := uuid.New()
	f, err := svc.Create(ctx, owner, formDTO.CreateFormRequest{
		Title:       "Old",
		Description: strPtr("desc"),
		Questions:   []formDTO.QuestionRequest{q("a"), q("b")},
	})
	require.NoError(t, err)

	got, err := svc.Update(ctx, owner, f.FormID, formDTO.UpdateFormRequest{Title: strPtr("New")})
	require.NoError(t, err)

	assert.Equal(t, "New", got.FormTitle)
	require.NotNil(t, got.FormDescription)
	assert.Equal(t, "desc", *got.FormDescription)
	assert.True(t, got.FormIsActive)
	require.Len(t, got.Questions, 2)
	assert.Equal(t, f.Questions[0].FormQuestionID, got.Questions[0].FormQuestionID)
	assert.Equal(t, f.Questions[1].FormQuestionID, got.Questions[1].FormQuestionID)
}

func TestUpdate_KeepsKnownQuestionIDs(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()
	owner := uuid.New()
	f := createForm(t, svc, owner, "F", q("a"), q("b"))
	keepID := f.Questions[1].FormQuestionID
	foreign := uuid.New()

	qs := []formDTO.QuestionRequest{
		{ID: keepID.String(), Type: "text", Question: "b renamed"},
		{ID: keepID.String(), Type: "text", Question: "dup id"},
		{ID: foreign.String(), Type: "text", Question: "foreign id"},
		q("   "),
	}
	got, err := svc.Update(ctx, owner, f.FormID, formDTO.UpdateFormRequest{Questions: &qs})
	require.NoError(t, err)

	require.Len(t, got.Questions, 3)
	assert.Equal(t, keepID, got.Questions[0].FormQuestionID)
	assert.Equal(t, "b renamed", got.Questions[0].FormQuestionText)
	assert.NotEqual(t, keepID, got.Questions[1].FormQuestionID)
	assert.NotEqual(t, foreign, got.Questions[2].FormQuestionID)
}

func TestUpdate_Validation(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()
	owner := uuid.New()
	f := createForm(t, svc, owner, "F", q("a"))

	_, err := svc.Update(ctx, owner, f.FormID, formDTO.UpdateFormRequest{Title: strPtr(" ")})
	assert.ErrorIs(t, err, helper.ErrValidation)

	blank := []formDTO.QuestionRequest{q(""), q("  ")}
	_, err = svc.Update(ctx, owner, f.FormID, formDTO.UpdateFormRequest{Questions: &blank})
	assert.ErrorIs(t, err, helper.ErrValidation)

	// form tidak berubah
	got, err := svc.Get(ctx, owner, f.FormID)
	require.NoError(t, err)
	assert.Equal(t, "F", got.FormTitle)
	assert.Len(t, got.Questions, 1)
}

func TestDelete(t *testing.T) {
	svc := newSvc()
	ctx := context.Background()
	owner := uuid.New()
	f := createForm(t, svc, owner, "F", q("a"))

	require.NoError(t, svc.Delete(ctx, owner, f.FormID))

	_, err := svc.Get(ctx, owner, f.FormID)
	assert.ErrorIs(t, err, helper.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, owner, f.FormID), helper.ErrNotFound)
}
