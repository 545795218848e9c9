package files

import (
	"errors"
	"net/http"
	"os"

	"coderfest/services"
	"coderfest/utils/response"

	"github.com/gin-gonic/gin"
)

const (
	ErrLinkInvalid  = "Invalid or expired file link"
	ErrFileNotFound = "File not found"
)

// ServeFile streams a stored payment proof after validating its signed link.
// The signature is the only access control: there is no other way to read
// from the proof store.
// @Summary Download a payment proof
// @Description Serves a stored file when presented with a valid time-bounded signature
// @Tags Files
// @Produce octet-stream
// @Param name path string true "Object name"
// @Param expires query string true "Expiry unix timestamp"
// @Param sig query string true "HMAC signature"
// @Success 200 {file} binary
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /files/{name} [get]
func ServeFile(c *gin.Context) {
	name := c.Param("name")
	store := services.NewProofStore()

	if err := store.Verify(name, c.Query("expires"), c.Query("sig")); err != nil {
		response.Error(c, http.StatusForbidden, ErrLinkInvalid)
		return
	}

	path := store.Path(name)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		response.Error(c, http.StatusNotFound, ErrFileNotFound)
		return
	}

	c.File(path)
}
