package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/StronkOnes/BrieflyOS/internal/api/respond"
	"github.com/StronkOnes/BrieflyOS/internal/api/validate"
	"github.com/StronkOnes/BrieflyOS/internal/model"
	"github.com/StronkOnes/BrieflyOS/internal/services"
)

type BlogPostHandler struct {
	svc *services.ContentService
	log zerolog.Logger
}

func NewBlogPostHandler(svc *services.ContentService, log zerolog.Logger) *BlogPostHandler {
	return &BlogPostHandler{svc: svc, log: log}
}

type blogPostInput struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	FeaturedImage string `json:"featuredImage"`
	Tags          string `json:"tags"`
	Categories    string `json:"categories"`
}

func (in *blogPostInput) toModel() *model.BlogPost {
	return &model.BlogPost{
		Title:         in.Title,
		Content:       in.Content,
		FeaturedImage: in.FeaturedImage,
		Tags:          in.Tags,
		Categories:    in.Categories,
	}
}

func (h *BlogPostHandler) CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var in blogPostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.BlogPost(in.Title, in.Content); err != nil {
		respond.WriteBadRequest(w, "Title and content are required")
		return
	}

	post, err := h.svc.CreateBlogPost(r.Context(), in.toModel())
	if err != nil {
		h.log.Error().Err(err).Msg("blog post create failed")
		respond.WriteInternalError(w, "Failed to save blog post")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, post)
}

func (h *BlogPostHandler) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListBlogPosts(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("blog post list failed")
		respond.WriteInternalError(w, "Failed to list blog posts")
		return
	}
	respond.WriteJSON(w, http.StatusOK, posts)
}

func (h *BlogPostHandler) UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respond.WriteNotFound(w, "Blog post not found")
		return
	}

	var in blogPostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := validate.BlogPost(in.Title, in.Content); err != nil {
		respond.WriteBadRequest(w, "Title and content are required")
		return
	}

	post := in.toModel()
	post.ID = id
	updated, err := h.svc.UpdateBlogPost(r.Context(), post)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Blog post not found")
			return
		}
		h.log.Error().Err(err).Int64("id", id).Msg("blog post update failed")
		respond.WriteInternalError(w, "Failed to update blog post")
		return
	}
	respond.WriteJSON(w, http.StatusOK, updated)
}

func (h *BlogPostHandler) DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respond.WriteNotFound(w, "Blog post not found")
		return
	}

	if err := h.svc.DeleteBlogPost(r.Context(), id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			respond.WriteNotFound(w, "Blog post not found")
			return
		}
		h.log.Error().Err(err).Int64("id", id).Msg("blog post delete failed")
		respond.WriteInternalError(w, "Failed to delete blog post")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
