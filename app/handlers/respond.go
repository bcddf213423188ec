package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/storefront-go/storefront/app/services"
	"github.com/storefront-go/storefront/app/utils/renderer"
	"gorm.io/gorm"
)

// respondError maps service failures onto the error taxonomy: field-level
// validation messages, forbidden, not-found, and a generic 500 for the rest.
func respondError(rnd *renderer.Renderer, w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		rnd.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"errors": verr.Fields})
	case errors.Is(err, services.ErrCartEmpty):
		rnd.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"error": "cart is empty"})
	case errors.Is(err, services.ErrForbidden):
		rnd.JSON(w, http.StatusForbidden, map[string]interface{}{"error": "forbidden"})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		rnd.JSON(w, http.StatusNotFound, map[string]interface{}{"error": "not found"})
	default:
		log.Printf("request failed: %v", err)
		rnd.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": "internal server error"})
	}
}

func fieldError(rnd *renderer.Renderer, w http.ResponseWriter, field, message string) {
	rnd.JSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
		"errors": map[string]string{field: message},
	})
}

// redirectTo sends the client to a named location after a successful write.
func redirectTo(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// redirectBack returns to the referring page, falling back to the root.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	ref := r.Referer()
	if ref == "" {
		ref = "/"
	}
	http.Redirect(w, r, ref, http.StatusSeeOther)
}

func formInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.FormValue(name))
}

// optionalFormValue returns nil when the field is absent or empty, so the
// optional variant attributes keep their NULL semantics.
func optionalFormValue(r *http.Request, name string) *string {
	v := r.FormValue(name)
	if v == "" {
		return nil
	}
	return &v
}
