package records

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"culture-media/internal/database"
	"culture-media/internal/middleware"
	"culture-media/internal/model"
	"culture-media/internal/service"
	"culture-media/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

func newGetCtx(e *echo.Echo, target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newFormCtx(e *echo.Echo, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sampleRecord() model.MediaRecord {
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	return model.MediaRecord{
		ID:         7,
		Species:    "Musa acuminata",
		Phase:      model.PhaseMultiplication,
		Ingredient: "BAP",
		Quantity:   2.5,
		Unit:       "mg/L",
		Notes:      "filter sterilize",
		CreatedBy:  "alice",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func restoreStubs() {
	listRecords = store.ListRecords
	getRecordByID = store.GetRecordByID
	createRecord = store.CreateRecord
	updateRecord = store.UpdateRecord
	deleteRecord = store.DeleteRecord
	listSpecies = store.ListSpecies
	listPhases = store.ListPhases
}

func TestListRecordsHandler(t *testing.T) {
	t.Cleanup(restoreStubs)
	e := echo.New()

	t.Run("ok with filters passed through", func(t *testing.T) {
		var gotFilter store.RecordFilter
		listRecords = func(_ context.Context, _ database.DB, f store.RecordFilter) ([]model.MediaRecord, error) {
			gotFilter = f
			return []model.MediaRecord{sampleRecord()}, nil
		}
		ctx, rec := newGetCtx(e, "/?species=Musa+acuminata&phase=multiplication&ingredient=bap")
		require.NoError(t, ListRecordsHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, store.RecordFilter{
			Species:    "Musa acuminata",
			Phase:      "multiplication",
			Ingredient: "bap",
		}, gotFilter)
		require.Contains(t, rec.Body.String(), `"ingredient":"BAP"`)
	})

	t.Run("empty result yields empty array", func(t *testing.T) {
		listRecords = func(context.Context, database.DB, store.RecordFilter) ([]model.MediaRecord, error) {
			return nil, nil
		}
		ctx, rec := newGetCtx(e, "/")
		require.NoError(t, ListRecordsHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		listRecords = func(context.Context, database.DB, store.RecordFilter) ([]model.MediaRecord, error) {
			return nil, errors.New("conn down")
		}
		ctx, rec := newGetCtx(e, "/")
		require.NoError(t, ListRecordsHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestGetRecordHandler(t *testing.T) {
	t.Cleanup(restoreStubs)
	e := echo.New()

	newIDCtx := func(id string) (echo.Context, *httptest.ResponseRecorder) {
		ctx, rec := newGetCtx(e, "/")
		ctx.SetParamNames("id")
		ctx.SetParamValues(id)
		return ctx, rec
	}

	t.Run("bad id", func(t *testing.T) {
		ctx, rec := newIDCtx("abc")
		require.NoError(t, GetRecordHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		getRecordByID = func(context.Context, database.DB, int64) (*model.MediaRecord, error) {
			return nil, pgx.ErrNoRows
		}
		ctx, rec := newIDCtx("404")
		require.NoError(t, GetRecordHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		getRecordByID = func(context.Context, database.DB, int64) (*model.MediaRecord, error) {
			return nil, errors.New("conn down")
		}
		ctx, rec := newIDCtx("7")
		require.NoError(t, GetRecordHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		r := sampleRecord()
		getRecordByID = func(_ context.Context, _ database.DB, id int64) (*model.MediaRecord, error) {
			require.Equal(t, int64(7), id)
			return &r, nil
		}
		ctx, rec := newIDCtx("7")
		require.NoError(t, GetRecordHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"species":"Musa acuminata"`)
	})
}

func TestCreateRecordHandler(t *testing.T) {
	t.Cleanup(restoreStubs)
	form := "species=Musa+acuminata&phase=multiplication&ingredient=BAP&quantity=2.5&unit=mg%2FL&notes=n"

	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newFormCtx(e, http.MethodPost, "")
	require.NoError(t, CreateRecordHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newFormCtx(e, http.MethodPost, form)
	require.NoError(t, CreateRecordHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// store failure
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, http.MethodPost, form)
	createRecord = func(context.Context, database.DB, *model.MediaRecord) error {
		return errors.New("conn down")
	}
	require.NoError(t, CreateRecordHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// success: 建立者取自 Session
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newFormCtx(e, http.MethodPost, form)
	ctx.Set(middleware.ContextSessionKey, service.Session{Authenticated: true, Identity: "alice", Role: service.RoleStandard})
	createRecord = func(_ context.Context, _ database.DB, r *model.MediaRecord) error {
		require.Equal(t, "alice", r.CreatedBy)
		require.Equal(t, 2.5, r.Quantity)
		r.ID = 9
		return nil
	}
	require.NoError(t, CreateRecordHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"id":9`)
	require.Contains(t, rec.Body.String(), `"created_by":"alice"`)
}

func TestUpdateRecordHandler(t *testing.T) {
	t.Cleanup(restoreStubs)
	form := "species=Musa+acuminata&phase=rooting&ingredient=IBA&quantity=1&unit=mg%2FL"

	newUpdateCtx := func(e *echo.Echo, id string) (echo.Context, *httptest.ResponseRecorder) {
		ctx, rec := newFormCtx(e, http.MethodPut, form)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id)
		return ctx, rec
	}

	// bad id
	e := echo.New()
	ctx, rec := newUpdateCtx(e, "abc")
	require.NoError(t, UpdateRecordHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// not found
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newUpdateCtx(e, "404")
	updateRecord = func(context.Context, database.DB, *model.MediaRecord) error {
		return store.ErrRecordNotFound
	}
	require.NoError(t, UpdateRecordHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	// store failure
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newUpdateCtx(e, "7")
	updateRecord = func(context.Context, database.DB, *model.MediaRecord) error {
		return errors.New("conn down")
	}
	require.NoError(t, UpdateRecordHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	// success
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newUpdateCtx(e, "7")
	updateRecord = func(_ context.Context, _ database.DB, r *model.MediaRecord) error {
		require.Equal(t, int64(7), r.ID)
		require.Equal(t, "rooting", r.Phase)
		return nil
	}
	require.NoError(t, UpdateRecordHandler(&database.FakeDB{})(ctx))
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteRecordHandler(t *testing.T) {
	t.Cleanup(restoreStubs)
	e := echo.New()

	newDeleteCtx := func(id string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodDelete, "/", nil)
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("id")
		ctx.SetParamValues(id)
		return ctx, rec
	}

	t.Run("bad id", func(t *testing.T) {
		ctx, rec := newDeleteCtx("abc")
		require.NoError(t, DeleteRecordHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		deleteRecord = func(context.Context, database.DB, int64) error { return store.ErrRecordNotFound }
		ctx, rec := newDeleteCtx("404")
		require.NoError(t, DeleteRecordHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		deleteRecord = func(context.Context, database.DB, int64) error { return errors.New("conn down") }
		ctx, rec := newDeleteCtx("7")
		require.NoError(t, DeleteRecordHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("ok", func(t *testing.T) {
		deleteRecord = func(_ context.Context, _ database.DB, id int64) error {
			require.Equal(t, int64(7), id)
			return nil
		}
		ctx, rec := newDeleteCtx("7")
		require.NoError(t, DeleteRecordHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestListSpeciesAndPhasesHandlers(t *testing.T) {
	t.Cleanup(restoreStubs)
	e := echo.New()

	t.Run("species ok", func(t *testing.T) {
		listSpecies = func(context.Context, database.DB) ([]string, error) {
			return []string{"Musa acuminata"}, nil
		}
		ctx, rec := newGetCtx(e, "/")
		require.NoError(t, ListSpeciesHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Musa acuminata")
	})

	t.Run("phases empty yields empty array", func(t *testing.T) {
		listPhases = func(context.Context, database.DB) ([]string, error) { return nil, nil }
		ctx, rec := newGetCtx(e, "/")
		require.NoError(t, ListPhasesHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		listSpecies = func(context.Context, database.DB) ([]string, error) { return nil, errors.New("conn down") }
		ctx, rec := newGetCtx(e, "/")
		require.NoError(t, ListSpeciesHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
