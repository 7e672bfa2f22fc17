package handler

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
)

// submitRequest carries only the fields the client sent. A nil field is
// left untouched on the form; a non-nil empty one clears it.
type submitRequest struct {
	Mode     *string   `json:"mode"`
	Name     *string   `json:"name"`
	Email    *string   `json:"email"`
	Phone    *string   `json:"phone"`
	Date     *string   `json:"date"`
	Time     *string   `json:"time"`
	Services *[]string `json:"services"`
	Reason   *string   `json:"reason"`
	Message  *string   `json:"message"`
}

type modeRequest struct {
	Mode string `json:"mode"`
}

type serviceRequest struct {
	Service string `json:"service"`
}

func isJSONBody(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// bind decodes a JSON body into dst, or fills it from the posted form
// through fromForm.
func bind(r *http.Request, dst any, fromForm func(form url.Values)) error {
	if isJSONBody(r) {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return fmt.Errorf("invalid JSON body: %w", err)
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("invalid form body: %w", err)
	}
	fromForm(r.PostForm)
	return nil
}

// posted returns the first value of key, or nil when the form omits key.
func posted(form url.Values, key string) *string {
	values, ok := form[key]
	if !ok {
		return nil
	}
	var v string
	if len(values) > 0 {
		v = values[0]
	}
	return &v
}

func postedAll(form url.Values, key string) *[]string {
	values, ok := form[key]
	if !ok {
		return nil
	}
	return &values
}

func bindSubmit(r *http.Request) (submitRequest, error) {
	var req submitRequest
	err := bind(r, &req, func(form url.Values) {
		req = submitRequest{
			Mode:     posted(form, "mode"),
			Name:     posted(form, "name"),
			Email:    posted(form, "email"),
			Phone:    posted(form, "phone"),
			Date:     posted(form, "date"),
			Time:     posted(form, "time"),
			Services: postedAll(form, "services"),
			Reason:   posted(form, "reason"),
			Message:  posted(form, "message"),
		}
	})
	return req, err
}

func bindMode(r *http.Request) (modeRequest, error) {
	var req modeRequest
	err := bind(r, &req, func(form url.Values) {
		req.Mode = form.Get("mode")
	})
	return req, err
}

func bindService(r *http.Request) (serviceRequest, error) {
	var req serviceRequest
	err := bind(r, &req, func(form url.Values) {
		req.Service = form.Get("service")
	})
	return req, err
}
