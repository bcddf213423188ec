package renderer

import (
	"log"
	"net/http"

	"github.com/unrolled/render"
)

// Page is the payload handed to the client-side renderer: the component to
// mount and its props, in the shape the frontend router expects.
type Page struct {
	Component string                 `json:"component"`
	Props     map[string]interface{} `json:"props"`
}

type Renderer struct {
	r *render.Render
}

func New() *Renderer {
	return &Renderer{r: render.New(render.Options{
		IndentJSON: true,
	})}
}

func (re *Renderer) Page(w http.ResponseWriter, status int, component string, props map[string]interface{}) {
	if props == nil {
		props = map[string]interface{}{}
	}
	if err := re.r.JSON(w, status, Page{Component: component, Props: props}); err != nil {
		log.Printf("render %s: %v", component, err)
	}
}

func (re *Renderer) JSON(w http.ResponseWriter, status int, v interface{}) {
	if err := re.r.JSON(w, status, v); err != nil {
		log.Printf("render json: %v", err)
	}
}
