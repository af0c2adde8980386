package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"wine_blog_writer/generator"
	"wine_blog_writer/images"
	"wine_blog_writer/render"
)

const maxBodyBytes = 1 << 20

const msgBadRequest = "잘못된 요청 형식입니다."

type generateResp struct {
	Content string          `json:"content"`
	Usage   generator.Usage `json:"usage"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generator.GenerationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	res, err := s.agent.Generate(ctx, req)
	if err != nil {
		s.fail(w, r, err, "글 생성")
		return
	}
	w.Header().Set("X-Generation-Id", res.ID)
	writeJSON(w, http.StatusOK, generateResp{Content: res.Content, Usage: res.Usage})
}

type modifyReq struct {
	CurrentContent string `json:"currentContent"`
	ModifyRequest  string `json:"modifyRequest"`
}

func (s *Server) handleModify(w http.ResponseWriter, r *http.Request) {
	var req modifyReq
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	out, err := s.editor.Modify(ctx, req.CurrentContent, req.ModifyRequest)
	if err != nil {
		s.fail(w, r, err, "수정")
		return
	}
	writeJSON(w, http.StatusOK, generateResp{Content: out.Text, Usage: out.Usage})
}

type contentReq struct {
	Content string `json:"content"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req contentReq
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	sum, err := s.summarizer.Summarize(ctx, req.Content)
	if err != nil {
		s.fail(w, r, err, "요약 생성")
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

type previewResp struct {
	HTML   string          `json:"html"`
	Images []render.Marker `json:"images"`
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req contentReq
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		jsonError(w, "미리볼 글을 입력해주세요.", http.StatusBadRequest)
		return
	}
	out, markers, err := render.Preview(req.Content)
	if err != nil {
		s.log.Error("preview render failed", zap.Error(err))
		jsonError(w, "미리보기 생성 중 오류: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, previewResp{HTML: out, Images: markers})
}

func (s *Server) handleImageSearch(w http.ResponseWriter, r *http.Request) {
	res, err := s.images.Search(r.Context(), r.URL.Query().Get("q"))
	if errors.Is(err, images.ErrEmptyQuery) {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		s.log.Error("image search failed", zap.Error(err))
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type modelEntry struct {
	generator.ModelInfo
	Estimate generator.Estimate `json:"estimate"`
}

type modelsResp struct {
	DefaultModel string       `json:"defaultModel"`
	Length       string       `json:"length"`
	Models       []modelEntry `json:"models"`
}

func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	cat := s.agent.Catalog()
	length, _ := generator.LookupLength(r.URL.Query().Get("length"))

	resp := modelsResp{DefaultModel: cat.DefaultModel(), Length: length.Key}
	for _, m := range cat.Models() {
		resp.Models = append(resp.Models, modelEntry{
			ModelInfo: m,
			Estimate:  cat.Estimate(m.ID, length.Key),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// fail logs err and writes the status and localized message for its category.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, action string) {
	cat := generator.Classify(err)
	status := http.StatusInternalServerError
	if cat == generator.CategoryInput {
		status = http.StatusBadRequest
	}
	s.log.Error(action+" failed",
		zap.String("category", cat.String()),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	jsonError(w, generator.ClientMessage(err, s.provider, action), status)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		jsonError(w, msgBadRequest, http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
