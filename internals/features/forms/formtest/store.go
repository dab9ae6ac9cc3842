// Package formtest berisi store in-memory yang memenuhi FormRepository dan
// ResponseRepository, dipakai test service & controller tanpa Postgres.
package formtest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	formModel "formku_backend/internals/features/forms/forms/model"
	formRepo "formku_backend/internals/features/forms/forms/repository"
	responseModel "formku_backend/internals/features/forms/responses/model"
	responseRepo "formku_backend/internals/features/forms/responses/repository"
)

var (
	_ formRepo.FormRepository         = (*Store)(nil)
	_ responseRepo.ResponseRepository = (*Store)(nil)
)

// Store: satu mutex untuk semua data, mirip satu transaksi serializable.
// Jam internal maju 1ms tiap penulisan supaya urutan created_at deterministik.
type Store struct {
	mu        sync.Mutex
	forms     map[uuid.UUID]formModel.FormModel
	responses []responseModel.FormResponseModel
	clock     time.Time
}

func NewStore() *Store {
	return &Store{
		forms: map[uuid.UUID]formModel.FormModel{},
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// SetClock memindah jam internal (penulisan berikutnya = t + 1ms).
func (s *Store) SetClock(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = t.UTC()
}

func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

// ResponseRows jumlah baris response tersimpan untuk form (termasuk yang sudah yatim, kalau ada).
func (s *Store) ResponseRows(formID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for i := range s.responses {
		if s.responses[i].FormResponseFormID == formID {
			n++
		}
	}
	return n
}

/* ====================== FormRepository ====================== */

func (s *Store) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]formModel.FormModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]formModel.FormModel, 0)
	for _, f := range s.forms {
		if f.FormOwnerID == ownerID {
			out = append(out, f.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].FormCreatedAt.After(out[j].FormCreatedAt)
	})
	return out, nil
}

func (s *Store) FindByOwner(_ context.Context, ownerID, formID uuid.UUID) (*formModel.FormModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.forms[formID]
	if !ok || f.FormOwnerID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := f.Clone()
	return &cp, nil
}

func (s *Store) FindActive(_ context.Context, formID uuid.UUID) (*formModel.FormModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.forms[formID]
	if !ok || !f.FormIsActive {
		return nil, gorm.ErrRecordNotFound
	}
	cp := f.Clone()
	return &cp, nil
}

func (s *Store) Create(_ context.Context, form *formModel.FormModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if form.FormID == uuid.Nil {
		form.FormID = uuid.New()
	}
	if _, exists := s.forms[form.FormID]; exists {
		return gorm.ErrDuplicatedKey
	}
	now := s.tick()
	form.FormCreatedAt = now
	form.FormUpdatedAt = now
	for i := range form.Questions {
		form.Questions[i].FormQuestionFormID = form.FormID
	}
	s.forms[form.FormID] = form.Clone()
	return nil
}

func (s *Store) Update(_ context.Context, form *formModel.FormModel) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.forms[form.FormID]
	if !ok || cur.FormOwnerID != form.FormOwnerID {
		return gorm.ErrRecordNotFound
	}
	in := form.Clone()
	for i := range in.Questions {
		in.Questions[i].FormQuestionFormID = cur.FormID
	}
	// counter & created_at tidak ikut di-update
	cur.FormTitle = in.FormTitle
	cur.FormDescription = in.FormDescription
	cur.FormIsActive = in.FormIsActive
	cur.Questions = in.Questions
	cur.FormUpdatedAt = s.tick()
	s.forms[cur.FormID] = cur
	return nil
}

func (s *Store) Delete(_ context.Context, ownerID, formID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.forms[formID]
	if !ok || f.FormOwnerID != ownerID {
		return gorm.ErrRecordNotFound
	}
	kept := s.responses[:0]
	for _, r := range s.responses {
		if r.FormResponseFormID != formID {
			kept = append(kept, r)
		}
	}
	s.responses = kept
	delete(s.forms, formID)
	return nil
}

/* ====================== ResponseRepository ====================== */

func (s *Store) CreateWithCounter(_ context.Context, resp *responseModel.FormResponseModel) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.forms[resp.FormResponseFormID]
	if !ok || !f.FormIsActive {
		return 0, gorm.ErrRecordNotFound
	}
	f.FormResponseCount++
	s.forms[f.FormID] = f

	resp.FormResponseCreatedAt = s.tick()
	s.responses = append(s.responses, cloneResponse(*resp))
	return f.FormResponseCount, nil
}

func (s *Store) ListByForm(_ context.Context, formID uuid.UUID) ([]responseModel.FormResponseModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]responseModel.FormResponseModel, 0)
	for _, r := range s.responses {
		if r.FormResponseFormID == formID {
			out = append(out, cloneResponse(r))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FormResponseCreatedAt.After(out[j].FormResponseCreatedAt)
	})
	return out, nil
}

func cloneResponse(r responseModel.FormResponseModel) responseModel.FormResponseModel {
	src := r.AnswerMap()
	cp := make(responseModel.Answers, len(src))
	for k, v := range src {
		cp[k] = v
	}
	r.FormResponseAnswers = datatypes.NewJSONType(cp)
	r.Form = nil
	return r
}
