package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/satisfaction-monitor-api/pkg/apiErrors"
)

// Route liga um método e caminho ao handler, com middlewares aplicados na ordem da lista
type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler
}

type Option func(r *Router)

// WithRoutes registra um grupo de rotas
func WithRoutes(routes ...Route) Option {
	return func(r *Router) {
		r.Handle(routes...)
	}
}

type Router struct {
	mux *httprouter.Router
}

// New cria o roteador com respostas 404/405 no envelope padrão da API
func New(opts ...Option) *Router {
	mux := httprouter.New()
	mux.HandleOPTIONS = false
	mux.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
	mux.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não permitido", map[string]string{"method": r.Method})
	})

	rt := &Router{mux: mux}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

func (r *Router) Handle(routes ...Route) {
	for _, route := range routes {
		r.mux.Handler(route.Method, route.Path, chain(route.Handler, route.Middlewares))
	}
}

func chain(h http.Handler, middlewares []func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
