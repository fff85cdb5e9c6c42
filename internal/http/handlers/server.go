package handlers

import (
	"go.uber.org/zap"

	"github.com/konnichiwabon/inventory/internal/auth"
	"github.com/konnichiwabon/inventory/internal/repo"
)

// Server holds the dependencies for all request handlers. Everything
// is injected at construction; there is no package-level state.
type Server struct {
	products repo.ProductRepository
	users    repo.UserRepository
	issuer   *auth.TokenIssuer
	log      *zap.SugaredLogger
}

func NewServer(products repo.ProductRepository, users repo.UserRepository, issuer *auth.TokenIssuer, log *zap.SugaredLogger) *Server {
	return &Server{
		products: products,
		users:    users,
		issuer:   issuer,
		log:      log,
	}
}
