package records

import (
	"errors"
	"net/http"
	"strconv"

	"culture-media/internal/api"
	"culture-media/internal/database"
	"culture-media/internal/metrics"
	"culture-media/internal/middleware"
	"culture-media/internal/model"
	"culture-media/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// 測試可覆寫下列變數
var (
	listRecords   = store.ListRecords
	getRecordByID = store.GetRecordByID
	createRecord  = store.CreateRecord
	updateRecord  = store.UpdateRecord
	deleteRecord  = store.DeleteRecord
	listSpecies   = store.ListSpecies
	listPhases    = store.ListPhases
)

func toResponse(r model.MediaRecord) api.RecordResponse {
	return api.RecordResponse{
		ID:         r.ID,
		Species:    r.Species,
		Phase:      r.Phase,
		Ingredient: r.Ingredient,
		Quantity:   r.Quantity,
		Unit:       r.Unit,
		Notes:      r.Notes,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func filterFromQuery(c echo.Context) store.RecordFilter {
	return store.RecordFilter{
		Species:    c.QueryParam("species"),
		Phase:      c.QueryParam("phase"),
		Ingredient: c.QueryParam("ingredient"),
	}
}

// @Summary     List media records
// @Description 依物種、培養階段、成分名稱過濾並列出成分紀錄
// @Tags        records
// @Produce     json
// @Param       species    query string false "物種（精確比對）"
// @Param       phase      query string false "培養階段"
// @Param       ingredient query string false "成分名稱（子字串比對）"
// @Success     200 {array}  api.RecordResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /records [get]
func ListRecordsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		recs, err := listRecords(c.Request().Context(), db, filterFromQuery(c))
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "record store unavailable"})
		}
		resp := make([]api.RecordResponse, 0, len(recs))
		for _, r := range recs {
			resp = append(resp, toResponse(r))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Get a media record by ID
// @Tags        records
// @Produce     json
// @Param       id path int true "紀錄 ID"
// @Success     200 {object} api.RecordResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /records/{id} [get]
func GetRecordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid record ID"})
		}
		rec, err := getRecordByID(c.Request().Context(), db, id)
		if errors.Is(err, pgx.ErrNoRows) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "record not found"})
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "record store unavailable"})
		}
		return c.JSON(http.StatusOK, toResponse(*rec))
	}
}

// @Summary     Create a media record
// @Description 新增一筆成分紀錄，建立者取自本次請求的 Session
// @Tags        records
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       species    formData string true  "物種"
// @Param       phase      formData string true  "培養階段 (initiation/multiplication/rooting/acclimatization)"
// @Param       ingredient formData string true  "成分名稱"
// @Param       quantity   formData number true  "用量"
// @Param       unit       formData string true  "單位"
// @Param       notes      formData string false "備註"
// @Success     201 {object} api.RecordResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /records [post]
func CreateRecordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RecordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		sess, _ := middleware.SessionFromContext(c)
		rec := model.MediaRecord{
			Species:    req.Species,
			Phase:      req.Phase,
			Ingredient: req.Ingredient,
			Quantity:   req.Quantity,
			Unit:       req.Unit,
			Notes:      req.Notes,
			CreatedBy:  sess.Identity,
		}
		if err := createRecord(c.Request().Context(), db, &rec); err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "record store unavailable"})
		}

		metrics.RecordMutationsTotal.WithLabelValues("create").Inc()
		return c.JSON(http.StatusCreated, toResponse(rec))
	}
}

// @Summary     Update a media record by ID
// @Tags        records
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       id         path     int    true  "紀錄 ID"
// @Param       species    formData string true  "物種"
// @Param       phase      formData string true  "培養階段"
// @Param       ingredient formData string true  "成分名稱"
// @Param       quantity   formData number true  "用量"
// @Param       unit       formData string true  "單位"
// @Param       notes      formData string false "備註"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /records/{id} [put]
func UpdateRecordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid record ID"})
		}

		var req api.RecordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		err = updateRecord(c.Request().Context(), db, &model.MediaRecord{
			ID:         id,
			Species:    req.Species,
			Phase:      req.Phase,
			Ingredient: req.Ingredient,
			Quantity:   req.Quantity,
			Unit:       req.Unit,
			Notes:      req.Notes,
		})
		if errors.Is(err, store.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "record not found"})
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "record store unavailable"})
		}

		metrics.RecordMutationsTotal.WithLabelValues("update").Inc()
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     Delete a media record by ID
// @Tags        records
// @Param       id path int true "紀錄 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /records/{id} [delete]
func DeleteRecordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid record ID"})
		}
		err = deleteRecord(c.Request().Context(), db, id)
		if errors.Is(err, store.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "record not found"})
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "record store unavailable"})
		}

		metrics.RecordMutationsTotal.WithLabelValues("delete").Inc()
		return c.NoContent(http.StatusNoContent)
	}
}

// @Summary     List known species
// @Description 列出紀錄中出現過的物種，供過濾選單使用
// @Tags        records
// @Produce     json
// @Success     200 {array}  string
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /records/species [get]
func ListSpeciesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		values, err := listSpecies(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "record store unavailable"})
		}
		if values == nil {
			values = []string{}
		}
		return c.JSON(http.StatusOK, values)
	}
}

// @Summary     List known culture phases
// @Description 列出紀錄中出現過的培養階段，供過濾選單使用
// @Tags        records
// @Produce     json
// @Success     200 {array}  string
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /records/phases [get]
func ListPhasesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		values, err := listPhases(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "record store unavailable"})
		}
		if values == nil {
			values = []string{}
		}
		return c.JSON(http.StatusOK, values)
	}
}
