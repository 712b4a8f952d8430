// Package corenlp drives a Stanford CoreNLP distribution as a subprocess
// over batches of plain-text files.
package corenlp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// DefaultAnnotators is the annotator list used for every batch unless
// overridden.
const DefaultAnnotators = "tokenize,ssplit,pos,lemma,ner,parse,dcoref"

const mainClass = "edu.stanford.nlp.pipeline.StanfordCoreNLP"

type Config struct {
	Home       string        // CoreNLP distribution directory, classpath is Home/*
	Java       string        // java executable, defaults to "java"
	Memory     string        // JVM max heap (-Xmx), defaults to "3g"
	Annotators string        // defaults to DefaultAnnotators
	Timeout    time.Duration // 0 means no limit
}

type Pipeline struct {
	cfg    Config
	runner Runner
}

func NewPipeline(cfg Config) (*Pipeline, error) {
	if cfg.Home == "" {
		return nil, errors.New("corenlp home is not set (use --corenlp-home or CORENLP_HOME)")
	}
	if cfg.Java == "" {
		cfg.Java = "java"
	}
	if cfg.Memory == "" {
		cfg.Memory = "3g"
	}
	if cfg.Annotators == "" {
		cfg.Annotators = DefaultAnnotators
	}

	return &Pipeline{
		cfg:    cfg,
		runner: execRunner{},
	}, nil
}

// Command assembles the argv for one batch: the fixed pipeline flags
// followed by the passthrough flags, verbatim and in order.
func (p *Pipeline) Command(fileList, outputDir string, passthrough []string) []string {
	argv := []string{
		p.cfg.Java,
		"-cp", filepath.Join(p.cfg.Home, "*"),
		"-Xmx" + p.cfg.Memory,
		mainClass,
		"-annotators", p.cfg.Annotators,
		"-filelist", fileList,
		"-outputDirectory", outputDir,
	}
	return append(argv, passthrough...)
}

// Annotate runs the pipeline once over every file directly inside inputDir,
// producing one annotation artifact per input in outputDir. The output
// directory is created if absent. The temporary file list is removed on
// every exit path; a failed removal after a successful run is an error.
func (p *Pipeline) Annotate(ctx context.Context, inputDir, outputDir string, passthrough []string) (err error) {
	files, err := ListInputs(inputDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fileList, err := writeFileList(files)
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(fileList); rmErr != nil && err == nil {
			err = fmt.Errorf("failed to remove file list: %w", rmErr)
		}
	}()

	slog.Info("annotating batch", "files", len(files), "annotators", p.cfg.Annotators, "output", outputDir)

	if p.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
		defer cancel()
	}

	if err := p.runner.Run(ctx, p.Command(fileList, outputDir, passthrough), os.Stdout, os.Stderr); err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}
	return nil
}
