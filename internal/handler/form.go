package handler

import (
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/debaren/debaren-backend/internal/service"
	"github.com/labstack/echo/v4"
)

func isMultipart(c echo.Context) bool {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(ct, echo.MIMEMultipartForm)
}

func formValue(form *multipart.Form, key string) (string, bool) {
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

func formFloat(form *multipart.Form, key string) (*float64, error) {
	v, ok := formValue(form, key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func formUint(form *multipart.Form, key string) (*uint, error) {
	v, ok := formValue(form, key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil, err
	}
	u := uint(n)
	return &u, nil
}

func formBool(form *multipart.Form, key string) (*bool, error) {
	v, ok := formValue(form, key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// uploadsFromHeaders opens multipart files for the service layer. The
// returned closer must be called after the service is done reading.
func uploadsFromHeaders(headers []*multipart.FileHeader) ([]service.Upload, func(), error) {
	uploads := make([]service.Upload, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	closer := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closer()
			return nil, nil, err
		}
		opened = append(opened, f)
		uploads = append(uploads, service.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Content:     f,
		})
	}
	return uploads, closer, nil
}
