package client

import (
	"bytes"
	"io"
	"mime/multipart"

	interrors "github.com/hemoglobin-nil/hemoglobin-go/internal/errors"
)

// Form builds a multipart/form-data payload of string fields plus named
// file parts (images, PDFs).
type Form struct {
	fields [][2]string
	files  []filePart
}

type filePart struct {
	field    string
	filename string
	reader   io.Reader
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) Set(key, value string) *Form {
	f.fields = append(f.fields, [2]string{key, value})
	return f
}

func (f *Form) SetFile(field, filename string, r io.Reader) *Form {
	f.files = append(f.files, filePart{field: field, filename: filename, reader: r})
	return f
}

func (f *Form) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, kv := range f.fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", interrors.Wrapf(err, "write field %q", kv[0])
		}
	}
	for _, fp := range f.files {
		part, err := w.CreateFormFile(fp.field, fp.filename)
		if err != nil {
			return nil, "", interrors.Wrapf(err, "create file part %q", fp.field)
		}
		if _, err := io.Copy(part, fp.reader); err != nil {
			return nil, "", interrors.Wrapf(err, "copy file part %q", fp.field)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", interrors.Wrapf(err, "finalize form")
	}
	return &buf, w.FormDataContentType(), nil
}
