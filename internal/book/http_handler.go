package book

import (
	"errors"
	"log/slog"
	"net/http"

	"bookshelf/internal/httpx"
)

// Response messages. Consumers match on these strings.
const (
	MsgAdded              = "Buku berhasil ditambahkan"
	MsgAddNameRequired    = "Gagal menambahkan buku. Mohon isi nama buku"
	MsgAddReadPageTooHigh = "Gagal menambahkan buku. readPage tidak boleh lebih besar dari pageCount"
	MsgAddBadPayload      = "Gagal menambahkan buku. Payload tidak valid"

	MsgNotFound = "Buku tidak ditemukan"

	MsgUpdated               = "Buku berhasil diperbarui"
	MsgUpdateNameRequired    = "Gagal memperbarui buku. Mohon isi nama buku"
	MsgUpdateReadPageTooHigh = "Gagal memperbarui buku. readPage tidak boleh lebih besar dari pageCount"
	MsgUpdateBadPayload      = "Gagal memperbarui buku. Payload tidak valid"
	MsgUpdateNotFound        = "Gagal memperbarui buku. Id tidak ditemukan"

	MsgDeleted        = "Buku berhasil dihapus"
	MsgDeleteNotFound = "Buku gagal dihapus. Id tidak ditemukan"

	MsgBadFilter = "Gagal menampilkan buku. Nilai filter tidak valid"
)

type createRequest struct {
	Name      string `json:"name" validate:"required"`
	Year      int    `json:"year"`
	Author    string `json:"author"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	PageCount int    `json:"pageCount"`
	ReadPage  int    `json:"readPage" validate:"ltefield=PageCount"`
	Reading   bool   `json:"reading"`
}

func (req createRequest) toNewBook() NewBook {
	return NewBook{
		Name:      req.Name,
		Year:      req.Year,
		Author:    req.Author,
		Summary:   req.Summary,
		Publisher: req.Publisher,
		PageCount: req.PageCount,
		ReadPage:  req.ReadPage,
		Reading:   req.Reading,
	}
}

type updateRequest struct {
	Name      *string `json:"name" validate:"required,min=1"`
	Year      *int    `json:"year"`
	Author    *string `json:"author"`
	Summary   *string `json:"summary"`
	Publisher *string `json:"publisher"`
	PageCount *int    `json:"pageCount"`
	ReadPage  *int    `json:"readPage"`
	Reading   *bool   `json:"reading"`
}

func (req updateRequest) readPageExceedsPageCount() bool {
	return req.ReadPage != nil && req.PageCount != nil && *req.ReadPage > *req.PageCount
}

func (req updateRequest) toPatch() Patch {
	return Patch{
		Name:      req.Name,
		Year:      req.Year,
		Author:    req.Author,
		Summary:   req.Summary,
		Publisher: req.Publisher,
		PageCount: req.PageCount,
		ReadPage:  req.ReadPage,
		Reading:   req.Reading,
	}
}

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPHandler{service: service, logger: logger}
}

// Create handles POST /books
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONFail(w, http.StatusBadRequest, MsgAddBadPayload)
		return
	}

	if errs := httpx.ValidateStruct(req); errs != nil {
		if httpx.HasFieldError(errs, "name") {
			httpx.JSONFail(w, http.StatusBadRequest, MsgAddNameRequired)
			return
		}
		httpx.JSONFail(w, http.StatusBadRequest, MsgAddReadPageTooHigh)
		return
	}

	id, err := h.service.Add(r.Context(), req.toNewBook())
	if err != nil {
		switch ReasonOf(err) {
		case ReasonNameRequired:
			httpx.JSONFail(w, http.StatusBadRequest, MsgAddNameRequired)
		case ReasonReadPageExceedsPageCount:
			httpx.JSONFail(w, http.StatusBadRequest, MsgAddReadPageTooHigh)
		default:
			h.internalError(w, r, err)
		}
		return
	}

	httpx.JSONSuccess(w, http.StatusCreated, MsgAdded, map[string]string{"bookId": id})
}

// List handles GET /books and GET /
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := ParseFilter(r.URL.Query())
	if err != nil {
		httpx.JSONFail(w, http.StatusBadRequest, MsgBadFilter)
		return
	}

	books, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{"books": books})
}

// Get handles GET /books/{bookId}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, ok, err := h.service.Get(r.Context(), r.PathValue("bookId"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if !ok {
		httpx.JSONFail(w, http.StatusNotFound, MsgNotFound)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, "", map[string]any{"book": b})
}

// Update handles PUT /books/{bookId}
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("bookId")

	var req updateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONFail(w, http.StatusBadRequest, MsgUpdateBadPayload)
		return
	}
	if errs := httpx.ValidateStruct(req); httpx.HasFieldError(errs, "name") {
		httpx.JSONFail(w, http.StatusBadRequest, MsgUpdateNameRequired)
		return
	}
	if req.readPageExceedsPageCount() {
		httpx.JSONFail(w, http.StatusBadRequest, MsgUpdateReadPageTooHigh)
		return
	}

	if _, ok, err := h.service.Get(r.Context(), id); err != nil {
		h.internalError(w, r, err)
		return
	} else if !ok {
		httpx.JSONFail(w, http.StatusNotFound, MsgUpdateNotFound)
		return
	}

	if _, err := h.service.Update(r.Context(), id, req.toPatch()); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httpx.JSONFail(w, http.StatusNotFound, MsgUpdateNotFound)
		case ReasonOf(err) == ReasonNameRequired:
			httpx.JSONFail(w, http.StatusBadRequest, MsgUpdateNameRequired)
		case ReasonOf(err) == ReasonReadPageExceedsPageCount:
			httpx.JSONFail(w, http.StatusBadRequest, MsgUpdateReadPageTooHigh)
		default:
			h.internalError(w, r, err)
		}
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, MsgUpdated, nil)
}

// Delete handles DELETE /books/{bookId}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("bookId")

	if _, ok, err := h.service.Get(r.Context(), id); err != nil {
		h.internalError(w, r, err)
		return
	} else if !ok {
		httpx.JSONFail(w, http.StatusNotFound, MsgDeleteNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if KindOf(err) == KindNotFound {
			httpx.JSONFail(w, http.StatusNotFound, MsgDeleteNotFound)
			return
		}
		h.internalError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, http.StatusOK, MsgDeleted, nil)
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("request_id", httpx.RequestIDFrom(r)),
		slog.String("kind", KindOf(err).String()),
		slog.Any("error", err),
	)
	httpx.JSONFail(w, http.StatusInternalServerError, httpx.InternalErrorMessage)
}
