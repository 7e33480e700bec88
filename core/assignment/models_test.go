package assignment_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/gradebook/core"
	"github.com/trezcool/gradebook/core/assignment"
	"github.com/trezcool/gradebook/core/subject"
	inmemdb "github.com/trezcool/gradebook/storage/database/inmem"
	"github.com/trezcool/gradebook/testutil"
)

type subjectGetter map[int]subject.Subject

func (g subjectGetter) GetByID(_ context.Context, id int) (subject.Subject, error) {
	if subj, ok := g[id]; ok {
		return subj, nil
	}
	return subject.Subject{}, subject.ErrNotFound
}

type failingGetter struct{ err error }

func (g failingGetter) GetByID(context.Context, int) (subject.Subject, error) {
	return subject.Subject{}, g.err
}

var subjects = subjectGetter{1: {ID: 1, Name: "Matemáticas"}}

func TestNewAssignment_Validate(t *testing.T) {
	ctx := context.Background()
	validate, translator := testutil.NewValidator()
	core.NowFunc = func() time.Time { return time.Date(2025, time.January, 20, 9, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { core.NowFunc = time.Now })

	valid := func() assignment.NewAssignment {
		return assignment.NewAssignment{
			SubjectID:   1,
			Title:       "  Examen de Álgebra ",
			Description: "Ecuaciones de primer grado",
			Kind:        " Examen",
			DueDate:     core.NewDate(2025, time.January, 25),
			MaxScore:    100,
		}
	}

	t.Run("valid", func(t *testing.T) {
		na := valid()
		require.NoError(t, na.Validate(ctx, validate, subjects))
		assert.Equal(t, "Examen de Álgebra", na.Title)
		assert.Equal(t, assignment.KindExam, na.Kind)
		assert.Equal(t, core.NewDate(2025, time.January, 20), na.CreatedAt)
	})

	tests := []struct {
		name    string
		mutate  func(na *assignment.NewAssignment)
		wantErr map[string]string
	}{
		{
			name:    "missing due date",
			mutate:  func(na *assignment.NewAssignment) { na.DueDate = core.Date{} },
			wantErr: map[string]string{"due_date": "this field is required"},
		},
		{
			name:    "due on creation day",
			mutate:  func(na *assignment.NewAssignment) { na.DueDate = core.NewDate(2025, time.January, 20) },
			wantErr: map[string]string{"due_date": "due date must be after the creation date"},
		},
		{
			name: "due before explicit creation date",
			mutate: func(na *assignment.NewAssignment) {
				na.CreatedAt = core.NewDate(2025, time.February, 1)
			},
			wantErr: map[string]string{"due_date": "due date must be after the creation date"},
		},
		{
			name:    "unknown kind",
			mutate:  func(na *assignment.NewAssignment) { na.Kind = "Ensayo" },
			wantErr: map[string]string{"kind": "invalid assignment kind"},
		},
		{
			name:    "zero max score",
			mutate:  func(na *assignment.NewAssignment) { na.MaxScore = 0 },
			wantErr: map[string]string{"max_score": "max_score must be greater than 0"},
		},
		{
			name:    "max score over limit",
			mutate:  func(na *assignment.NewAssignment) { na.MaxScore = 1001 },
			wantErr: map[string]string{"max_score": "max_score must be 1,000 or less"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			na := valid()
			tt.mutate(&na)
			err := na.Validate(ctx, validate, subjects)
			var vErrs validator.ValidationErrors
			require.ErrorAs(t, err, &vErrs)
			assert.Equal(t, tt.wantErr, core.TranslateErrors(vErrs, translator))
		})
	}

	t.Run("unknown subject", func(t *testing.T) {
		na := valid()
		na.SubjectID = 99
		err := na.Validate(ctx, validate, subjects)
		var vErr *core.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, []core.FieldError{{Field: "subject_id", Error: "a valid subject must be selected"}}, vErr.Fields)
	})

	t.Run("subject lookup failure", func(t *testing.T) {
		boom := errors.New("boom")
		na := valid()
		err := na.Validate(ctx, validate, failingGetter{boom})
		assert.Equal(t, boom, errors.Cause(err))
	})
}

func TestUpdateAssignment_Validate(t *testing.T) {
	ctx := context.Background()
	validate, translator := testutil.NewValidator()
	orig := assignment.Assignment{
		ID:          1,
		SubjectID:   1,
		Title:       "Examen de Álgebra",
		Description: "Ecuaciones de primer grado",
		Kind:        assignment.KindExam,
		CreatedAt:   core.NewDate(2025, time.January, 10),
		DueDate:     core.NewDate(2025, time.January, 25),
		MaxScore:    100,
	}

	t.Run("blank fields keep the original", func(t *testing.T) {
		maxScore := 50.0
		ua := assignment.UpdateAssignment{Title: "Examen final", MaxScore: &maxScore}
		require.NoError(t, ua.Validate(ctx, orig, validate, subjects))
		assert.Equal(t, assignment.UpdateAssignment{
			SubjectID:   1,
			Title:       "Examen final",
			Description: orig.Description,
			Kind:        assignment.KindExam,
			CreatedAt:   orig.CreatedAt,
			DueDate:     orig.DueDate,
			MaxScore:    &maxScore,
		}, ua)

		ua = assignment.UpdateAssignment{}
		require.NoError(t, ua.Validate(ctx, orig, validate, subjects))
		assert.Equal(t, 100.0, *ua.MaxScore)
	})

	t.Run("explicit zero max score", func(t *testing.T) {
		maxScore := 0.0
		ua := assignment.UpdateAssignment{MaxScore: &maxScore}
		var vErrs validator.ValidationErrors
		require.ErrorAs(t, ua.Validate(ctx, orig, validate, subjects), &vErrs)
		assert.Equal(t,
			map[string]string{"max_score": "max_score must be greater than 0"},
			core.TranslateErrors(vErrs, translator),
		)
	})

	t.Run("moving to an unknown subject", func(t *testing.T) {
		ua := assignment.UpdateAssignment{SubjectID: 42}
		var vErr *core.ValidationError
		require.ErrorAs(t, ua.Validate(ctx, orig, validate, subjects), &vErr)
		assert.Equal(t, "subject_id", vErr.Fields[0].Field)
	})
}

func TestAssignment_IsOverdue(t *testing.T) {
	asgmt := assignment.Assignment{DueDate: core.NewDate(2025, time.January, 25)}
	assert.False(t, asgmt.IsOverdue(core.NewDate(2025, time.January, 24)))
	assert.False(t, asgmt.IsOverdue(core.NewDate(2025, time.January, 25)))
	assert.True(t, asgmt.IsOverdue(core.NewDate(2025, time.January, 26)))
}

func TestKind_IsValid(t *testing.T) {
	for _, k := range assignment.Kinds {
		assert.True(t, k.Value.IsValid(), k.Name)
	}
	assert.False(t, assignment.Kind("tarea").IsValid())
	assert.False(t, assignment.Kind("").IsValid())
}

func TestService_Update_keepsUnsetFields(t *testing.T) {
	ctx := context.Background()
	db := inmemdb.OpenSeeded()
	svc := assignment.NewService(inmemdb.NewAssignmentRepository(db))
	orig, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)

	got, err := svc.Update(ctx, 1, assignment.UpdateAssignment{Title: "Examen final"})
	require.NoError(t, err)
	want := orig
	want.Title = "Examen final"
	assert.Equal(t, want, got)

	_, err = svc.Update(ctx, 42, assignment.UpdateAssignment{Title: "Examen final"})
	assert.Equal(t, assignment.ErrNotFound, errors.Cause(err))
}
