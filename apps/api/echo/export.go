package echoapi

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	exportsvc "github.com/trezcool/feeflow/services/export"
)

// sendWorkbook renders the whole workbook before answering, so that a failure is still a clean 500.
func sendWorkbook(ctx echo.Context, filename string, write func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return errors.Wrapf(err, "writing %s", filename)
	}
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK, exportsvc.ContentTypeXLSX, buf.Bytes())
}
