// Package server ChatterLoop User Service
//
// The user service ranks post engagement, composes newsfeeds and guards
// connection consistency for the ChatterLoop network.
//
//     Schemes: https
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"

	mm "github.com/PaoloGuimalan/chatterloop-user-service/internal/middleware"
	"github.com/PaoloGuimalan/chatterloop-user-service/internal/service"
)

//go:generate swagger generate spec -t swagger -m -c . -o ../../static/swagger.json

const maxBodySize = 64 * 1024

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration) {
	r.Use(
		middleware.RequestID,
		mm.Logging,
		middleware.StripSlashes,
		cors.AllowAll().Handler,
		mm.Recoverer,
		middleware.Timeout(timeout),
		mm.BodyLimiter(maxBodySize),
	)

	srv := server{
		s: s,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Post("/accounts", srv.createAccount)
		r.Get("/accounts/{account}", srv.getAccount)

		r.Post("/posts", srv.createPost)
		r.Get("/posts/{postID}", srv.getPost)
		r.Get("/posts/{postID}/engagement", srv.getEngagement)

		r.Post("/posts/{postID}/reactions", srv.react)
		r.Put("/posts/{postID}/reactions", srv.changeReaction)
		r.Delete("/posts/{postID}/reactions", srv.removeReaction)
		r.Get("/posts/{postID}/reactions", mm.Cached(time.Minute, srv.getReactionBreakdown))

		r.Post("/posts/{postID}/comments", srv.addComment)
		r.Get("/posts/{postID}/comments", srv.listComments)
		r.Put("/comments/{commentID}", srv.updateComment)
		r.Delete("/comments/{commentID}", srv.deleteComment)

		r.Post("/posts/{postID}/shares", srv.sharePost)

		r.Get("/feed", srv.getFeed)

		r.Post("/connections", srv.proposeConnection)
		r.Post("/connections/{groupID}/accept", srv.acceptConnection)
		r.Get("/profiles/{account}/connections", srv.listConnections)
		r.Get("/profiles/{account}/posts", srv.listProfilePosts)
	})
}
