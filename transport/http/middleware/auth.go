package middleware

import (
	"context"
	"errors"
	"marketplace/config"
	"marketplace/infras/jwt"
	"marketplace/infras/otel"
	"marketplace/permissions"
	"marketplace/shared/constant"
	"marketplace/shared/failure"
	"marketplace/transport/http/response"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type internalCallerKey struct{}

// Auth resolves who is calling: a service holding the API key or an account
// holding a session token.
type Auth interface {
	Auth(http.Handler) http.Handler
	APIKey(http.Handler) http.Handler
}

type Role interface {
	RBAC(http.Handler) http.Handler
}

type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// IsInternalCaller reports whether the request was authenticated with the API key.
func IsInternalCaller(ctx context.Context) bool {
	internal, _ := ctx.Value(internalCallerKey{}).(bool)

	return internal
}

// route returns the matched chi pattern and its permission entry. The pattern
// is empty when nothing matches, which leaves the 404 to the router.
func (m *authRoleImpl) route(r *http.Request) (string, permissions.Permission) {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return "", permissions.Permission{}
	}

	pattern := rctx.Routes.Find(chi.NewRouteContext(), r.Method, r.URL.Path)
	if pattern == "" || m.permission == nil {
		return pattern, permissions.Permission{}
	}

	return pattern, m.permission.FindPermissions(pattern, r.Method)
}

func reject(w http.ResponseWriter, scope otel.Scope, err error) {
	scope.TraceError(err)
	response.WithError(w, err)
}

// Auth validates the session token and stores its claims on the context.
// Routes marked skip and internal callers pass through untouched.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "auth.middleware")
		defer scope.End()

		pattern, permission := m.route(r)

		if IsInternalCaller(ctx) || permission.Skip || pattern == "" {
			next.ServeHTTP(w, r)

			return
		}

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.route":      pattern,
			"http.method":     r.Method,
		})

		header := r.Header.Get(constant.RequestHeaderAuthorization)
		if header == "" {
			reject(w, scope, failure.Unauthorized("Missing authorization header"))

			return
		}

		token, err := jwt.ExtractTokenFromHeader(header)
		if err != nil {
			reject(w, scope, failure.Unauthorized("Invalid authorization header format"))

			return
		}

		claims, err := m.jwtService.ValidateToken(token, jwt.SessionToken)
		if err != nil {
			reject(w, scope, failure.Unauthorized(tokenErrorMessage(err)))

			return
		}

		if claims.AccountID == "" || claims.Role == "" {
			log.Warn().Str("token_id", claims.TokenID).Msg("session token without account claims")
			reject(w, scope, failure.Unauthorized("Invalid token claims"))

			return
		}

		scope.SetAttribute("auth.role", claims.Role)

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "Invalid token claims"
	case errors.Is(err, jwt.ErrInvalidToken):
		return "Invalid token"
	default:
		return "Token validation failed"
	}
}

func withClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.AccountID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserPhone, claims.Phone)
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
	ctx = context.WithValue(ctx, constant.ContextKeyAccountType, claims.AccountType)

	return context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)
}

// RBAC allows a request when the caller's role is listed for the route. A
// route missing from the permission table is denied.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "rbac.middleware")
		defer scope.End()

		if IsInternalCaller(ctx) {
			next.ServeHTTP(w, r)

			return
		}

		if m.permission == nil {
			reject(w, scope, failure.ForbiddenError)

			return
		}

		pattern, permission := m.route(r)

		if m.permission.Skip || permission.Skip || pattern == "" {
			next.ServeHTTP(w, r)

			return
		}

		role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if !slices.Contains(permission.Permissions, role) {
			scope.SetAttributes(map[string]any{
				"user_role":     role,
				"allowed_roles": permission.Permissions,
				"http.route":    pattern,
			})
			reject(w, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// APIKey marks requests carrying the configured key as internal. A wrong key
// is rejected outright instead of falling back to session auth.
func (m *authRoleImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := m.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, "api_key.middleware")
		defer scope.End()

		key := r.Header.Get(constant.RequestHeaderAPIKey)
		if key == "" {
			scope.SetAttribute("http.source", "client")
			next.ServeHTTP(w, r)

			return
		}

		scope.SetAttribute("http.source", "internal")

		if m.cfg.App.APIKey == "" || key != m.cfg.App.APIKey {
			reject(w, scope, failure.ForbiddenError)

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, internalCallerKey{}, true)))
	})
}
