package controllers

import (
	"errors"
	"net/http"

	"fitbyte-be/internal/service"

	"github.com/gin-gonic/gin"
)

// multipartOverhead is headroom for boundaries and part headers around the file.
const multipartOverhead = 64 << 10

type FileController struct {
	fileService service.FileService
	maxBytes    int64
}

func NewFileController(fileService service.FileService, maxBytes int64) *FileController {
	return &FileController{fileService: fileService, maxBytes: maxBytes}
}

// UploadFile handles POST /v1/file with a multipart "file" field
func (fc *FileController) UploadFile(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, fc.maxBytes+multipartOverhead)

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, service.ErrFileTooLarge)
			return
		}
		respondError(c, service.ErrFileMissing)
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	response, err := fc.fileService.Upload(c.Request.Context(), file, header.Size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
