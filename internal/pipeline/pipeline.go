package pipeline

import (
	"github.com/asdl-go/asdl/internal/ast"
	"github.com/asdl-go/asdl/internal/diagnostics"
	"github.com/asdl-go/asdl/internal/token"
)

// PipelineContext carries one schema source through the loading stages.
type PipelineContext struct {
	FilePath    string
	SourceCode  string
	TokenStream *token.Stream
	Module      *ast.Module
	Errors      []*diagnostics.DiagnosticError
}

func NewPipelineContext(source string) *PipelineContext {
	return &PipelineContext{SourceCode: source}
}

// Processor is one stage of the loading pipeline.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = processor.Process(ctx)
		// Continue on errors so one run collects diagnostics from all stages.
	}
	return ctx
}
