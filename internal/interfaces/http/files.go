package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/frota-api/internal/application/dto"
	"github.com/jhoicas/frota-api/internal/application/report"
	"github.com/jhoicas/frota-api/internal/application/sheet"
)

// importFileField campo multipart con la planilla a importar.
const importFileField = "file"

// readUpload lee la planilla enviada en el campo "file".
func readUpload(c *fiber.Ctx, reader sheet.Reader) ([][]string, error) {
	fh, err := c.FormFile(importFileField)
	if err != nil {
		return nil, errMissingFile
	}
	f, err := fh.Open()
	if err != nil {
		return nil, errMissingFile
	}
	defer f.Close()
	rows, err := reader.ReadRows(f)
	if err != nil {
		return nil, errUnreadableFile
	}
	return rows, nil
}

type uploadError string

func (e uploadError) Error() string { return string(e) }

const (
	errMissingFile    uploadError = "archivo requerido en el campo file"
	errUnreadableFile uploadError = "no se pudo leer la planilla (se espera .xlsx)"
)

// importWith lee la planilla y la entrega al caso de uso de importación.
func importWith(c *fiber.Ctx, reader sheet.Reader, run func(rows [][]string) (*dto.ImportResult, error)) error {
	rows, err := readUpload(c, reader)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}
	out, err := run(rows)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// sendFile responde con el archivo como descarga.
func sendFile(c *fiber.Ctx, f *report.File, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(f.Name)
	c.Set(fiber.HeaderContentType, f.ContentType)
	return c.Send(f.Data)
}
