package generator

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AgentConfig wires the optional collaborators of an Agent.
type AgentConfig struct {
	Catalog   *Catalog
	Templates *Templates
	Logger    *zap.Logger
}

// Agent runs the fact-grounded pipeline:
// extract facts -> generate -> verify -> (optional) correct -> append contact footer.
type Agent struct {
	catalog   *Catalog
	tpl       *Templates
	log       *zap.Logger
	facts     *FactExtractor
	writer    *Writer
	verifier  *Verifier
	corrector *Corrector
}

func NewAgent(llm LLMClient, cfg AgentConfig) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if cfg.Catalog == nil {
		cfg.Catalog = CatalogFor("openai")
	}
	if cfg.Templates == nil {
		cfg.Templates = DefaultTemplates()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Agent{
		catalog:   cfg.Catalog,
		tpl:       cfg.Templates,
		log:       cfg.Logger,
		facts:     NewFactExtractor(llm, cfg.Logger),
		writer:    NewWriter(llm, cfg.Templates),
		verifier:  NewVerifier(llm, cfg.Logger),
		corrector: NewCorrector(llm),
	}, nil
}

// Catalog exposes the model table the agent resolves against.
func (a *Agent) Catalog() *Catalog { return a.catalog }

// Generate runs the pipeline once. Only validation and draft generation errors
// reach the caller; every other stage degrades in place.
func (a *Agent) Generate(ctx context.Context, req GenerationRequest) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	model := a.catalog.Resolve(req.Model)
	length, known := LookupLength(req.Length)
	res := Result{ID: uuid.NewString(), Model: model, Length: length.Key}
	log := a.log.With(
		zap.String("run_id", res.ID),
		zap.String("model", model),
		zap.String("length", length.Key),
	)
	if req.Model != "" && req.Model != model {
		log.Info("unknown model requested, using default", zap.String("requested", req.Model))
	}
	if req.Length != "" && !known {
		log.Info("unknown length tier requested, using default", zap.String("requested", req.Length))
	}

	res.enter(log, StageExtractingFacts)
	// only the wine identity; highlights and length instructions are writer concerns
	facts, u := a.facts.Extract(ctx, model, req.Description())
	res.Usage.Add(u)
	if facts.Empty() {
		log.Info("no verified facts, grounding on general knowledge")
	}

	res.enter(log, StageGenerating)
	draft, u, err := a.writer.Write(ctx, model, req, facts, length)
	res.Usage.Add(u)
	if err != nil {
		log.Error("draft generation failed", zap.Error(err))
		return Result{}, err
	}

	res.enter(log, StageVerifying)
	verdict, u := a.verifier.Verify(ctx, model, draft, facts)
	res.Usage.Add(u)

	if verdict.NeedsCorrection() {
		res.enter(log, StageCorrecting)
		corrected, u, err := a.corrector.Correct(ctx, model, draft, verdict.Issues, length.MaxTokens)
		res.Usage.Add(u)
		switch {
		case err != nil && ctx.Err() != nil:
			log.Error("correction aborted", zap.Error(err))
			return Result{}, err
		case err != nil:
			log.Warn("correction failed, keeping uncorrected draft", zap.Error(err))
		default:
			res.Corrected = corrected != draft
			draft = corrected
		}
	}

	res.Content = draft + a.tpl.Contact()
	res.enter(log, StageDone)
	log.Info("generation finished",
		zap.String("title", Title(draft)),
		zap.Bool("corrected", res.Corrected),
		zap.Int64("total_tokens", res.Usage.TotalTokens),
	)
	return res, nil
}

func (r *Result) enter(log *zap.Logger, s Stage) {
	r.Stages = append(r.Stages, s)
	log.Info("pipeline stage", zap.String("stage", string(s)))
}
