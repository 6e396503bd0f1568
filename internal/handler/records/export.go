package records

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"

	"culture-media/internal/api"
	"culture-media/internal/database"
	"culture-media/internal/metrics"

	"github.com/labstack/echo/v4"
)

var exportHeader = []string{"id", "species", "phase", "ingredient", "quantity", "unit", "notes", "created_by", "created_at"}

// @Summary     Export media records as CSV
// @Description 以與列表相同的過濾條件匯出 CSV
// @Tags        records
// @Produce     text/csv
// @Param       species    query string false "物種（精確比對）"
// @Param       phase      query string false "培養階段"
// @Param       ingredient query string false "成分名稱（子字串比對）"
// @Success     200 {string} string "CSV 內容"
// @Failure     503 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /records/export [get]
func ExportRecordsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		recs, err := listRecords(c.Request().Context(), db, filterFromQuery(c))
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, api.ErrorResponse{Message: "record store unavailable"})
		}

		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write(exportHeader); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to build export"})
		}
		for _, r := range recs {
			row := []string{
				strconv.FormatInt(r.ID, 10),
				r.Species,
				r.Phase,
				r.Ingredient,
				strconv.FormatFloat(r.Quantity, 'f', -1, 64),
				r.Unit,
				r.Notes,
				r.CreatedBy,
				r.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			}
			if err := w.Write(row); err != nil {
				return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to build export"})
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to build export"})
		}

		metrics.ExportsTotal.Inc()
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="media_records.csv"`)
		return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	}
}
