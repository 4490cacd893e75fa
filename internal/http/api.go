package http

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cinerate/internal/auth"
	"cinerate/internal/domain"
	"cinerate/internal/realtime"
	"cinerate/internal/repository"
	"cinerate/internal/service"
	"cinerate/internal/storage"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users    service.UserService
	reviews  service.ReviewService
	movies   repository.MovieRepository
	sessions *auth.Manager
	hub      *realtime.Hub
	storage  storage.Service
	logger   *logrus.Logger
	tokenTTL time.Duration
}

func NewHandler(
	users service.UserService,
	reviews service.ReviewService,
	movies repository.MovieRepository,
	sessions *auth.Manager,
	hub *realtime.Hub,
	store storage.Service,
	logger *logrus.Logger,
	tokenTTL time.Duration,
) *Handler {
	return &Handler{
		users:    users,
		reviews:  reviews,
		movies:   movies,
		sessions: sessions,
		hub:      hub,
		storage:  store,
		logger:   logger,
		tokenTTL: tokenTTL,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)
		api.POST("/auth/logout", h.logout)

		api.GET("/movies", h.listMovies)
		api.GET("/movies/:id", h.getMovie)

		api.GET("/reviews/user/:userId", h.listUserReviews)
		api.GET("/reviews/movie/:movieId", h.listMovieReviews)
		api.GET("/reviews/user/:userId/movie/:movieId", h.getUserMovieReview)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
	}

	authed := api.Group("", h.sessions.RequireSession())
	{
		authed.GET("/auth/me", h.currentSession)
		authed.POST("/reviews", h.createReview)
		authed.PUT("/reviews/:id", h.updateReview)
		authed.DELETE("/reviews/:id", h.deleteReview)
		authed.POST("/upload/profile", h.uploadProfile)
	}

	router.GET("/ws", h.serveWS)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	h.establishSession(c, user)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	h.establishSession(c, user)
}

// establishSession issues a session token for the user, sets it as a
// cookie, and writes the login/register response body.
func (h *Handler) establishSession(c *gin.Context, user *domain.User) {
	token, err := h.sessions.Establish(user.ID)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.SetCookie(auth.SessionCookie, token, int(h.tokenTTL/time.Second), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"user":  userToResponse(user),
		"token": token,
	})
}

func (h *Handler) logout(c *gin.Context) {
	if token := auth.TokenFromRequest(c); token != "" {
		h.sessions.Invalidate(token)
	}
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *Handler) currentSession(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), auth.UserID(c))
	if err != nil {
		h.errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(user))
}

func (h *Handler) listMovies(c *gin.Context) {
	var (
		movies []domain.Movie
		err    error
	)

	ctx := c.Request.Context()
	switch {
	case c.Query("search") != "":
		movies, err = h.movies.Search(ctx, c.Query("search"))
	case c.Query("genre") != "" && c.Query("genre") != "all":
		movies, err = h.movies.ListByGenre(ctx, c.Query("genre"))
	default:
		movies, err = h.movies.ListAll(ctx)
	}
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	resp := make([]MovieResponse, len(movies))
	for i := range movies {
		resp[i] = movieToResponse(movies[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) getMovie(c *gin.Context) {
	movie, err := h.movies.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, movieToResponse(*movie))
}

func (h *Handler) listUserReviews(c *gin.Context) {
	reviews, err := h.reviews.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, reviewsToResponse(reviews))
}

func (h *Handler) listMovieReviews(c *gin.Context) {
	reviews, err := h.reviews.ListByMovie(c.Request.Context(), c.Param("movieId"))
	if err != nil {
		h.errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, reviewsToResponse(reviews))
}

func (h *Handler) getUserMovieReview(c *gin.Context) {
	review, err := h.reviews.GetUserReviewForMovie(c.Request.Context(), c.Param("userId"), c.Param("movieId"))
	if err != nil {
		h.errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, reviewToResponse(*review))
}

type createReviewRequest struct {
	UserID     string `json:"userId"`
	MovieID    string `json:"movieId" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	ReviewText string `json:"reviewText"`
}

func (h *Handler) createReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	callerID := auth.UserID(c)
	// A body userId is allowed for wire compatibility but may not name
	// anyone other than the session user.
	if req.UserID != "" && req.UserID != callerID {
		h.errorResponse(c, service.ErrForbidden)
		return
	}

	review, err := h.reviews.Submit(c.Request.Context(), callerID, req.MovieID, req.Rating, req.ReviewText)
	if err != nil {
		h.errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, reviewToResponse(*review))
}

type updateReviewRequest struct {
	Rating     *int    `json:"rating"`
	ReviewText *string `json:"reviewText"`
}

func (h *Handler) updateReview(c *gin.Context) {
	var req updateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	review, err := h.reviews.Edit(c.Request.Context(), c.Param("id"), auth.UserID(c), repository.ReviewUpdate{
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		h.errorResponse(c, err)
		return
	}
	c.JSON(http.StatusOK, reviewToResponse(*review))
}

func (h *Handler) deleteReview(c *gin.Context) {
	deleted, err := h.reviews.Remove(c.Request.Context(), c.Param("id"), auth.UserID(c))
	if err != nil {
		h.errorResponse(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"kind": "not_found", "message": "review not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted successfully"})
}

const maxProfileImageSize = 5 << 20 // 5 MB

func (h *Handler) uploadProfile(c *gin.Context) {
	if h.storage == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"kind": "internal_error", "message": "storage service not configured"})
		return
	}

	file, err := c.FormFile("profileImage")
	if err != nil {
		badRequest(c, err)
		return
	}
	if file.Size > maxProfileImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"kind": "validation_error", "message": "profile image exceeds 5 MB"})
		return
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"kind": "validation_error", "message": "profile image must be an image"})
		return
	}

	src, err := file.Open()
	if err != nil {
		h.errorResponse(c, err)
		return
	}
	defer src.Close()

	callerID := auth.UserID(c)
	key := fmt.Sprintf("%s/%s%s", callerID, uuid.NewString(), filepath.Ext(file.Filename))
	fileURL, err := h.storage.UploadProfileImage(c.Request.Context(), key, contentType, src)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	user, err := h.users.UpdateProfilePicture(c.Request.Context(), callerID, fileURL)
	if err != nil {
		h.errorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fileUrl": fileURL,
		"user":    userToResponse(user),
	})
}
