// Copyright 2025 The winenhanced Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package sysinfo reports processor and memory figures for the cpu and mem
// commands. Host statistics come from gopsutil.
package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrUnavailable is returned when the host statistics could not be read.
var ErrUnavailable = errors.New("system information unavailable")

// DefaultSampleInterval is how long CPUUsage measures load.
const DefaultSampleInterval = 500 * time.Millisecond

// CPU describes one processor package as the platform reports it.
type CPU struct {
	Model string
	// MHz is the nominal clock frequency.
	MHz float64
	// Cores is the number of physical cores in the package.
	Cores int
}

// Memory holds physical memory figures in bytes.
type Memory struct {
	Total     uint64
	Free      uint64
	Used      uint64
	Available uint64
}

// Source is the host statistics surface.
type Source interface {
	CPUs(ctx context.Context) ([]CPU, error)
	// CPUPercent samples per-logical-CPU load over interval.
	CPUPercent(ctx context.Context, interval time.Duration) ([]float64, error)
	Memory(ctx context.Context) (Memory, error)
}

// Reader wraps a Source with error classification and logging.
type Reader struct {
	Source         Source
	SampleInterval time.Duration
	Logger         *zap.Logger
}

// NewReader returns a Reader backed by gopsutil.
func NewReader(logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{
		Source:         gopsutilSource{},
		SampleInterval: DefaultSampleInterval,
		Logger:         logger,
	}
}

// CPUs lists the processor packages.
func (r *Reader) CPUs(ctx context.Context) ([]CPU, error) {
	cpus, err := r.Source.CPUs(ctx)
	if err != nil {
		r.Logger.Warn("cpu info failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	r.Logger.Debug("cpu info", zap.Int("packages", len(cpus)))
	return cpus, nil
}

// CPUUsage returns the load of every logical CPU in percent, measured over
// SampleInterval. It blocks for that long unless ctx ends first.
func (r *Reader) CPUUsage(ctx context.Context) ([]float64, error) {
	interval := r.SampleInterval
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	usage, err := r.Source.CPUPercent(ctx, interval)
	if err != nil {
		r.Logger.Warn("cpu usage failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return usage, nil
}

// Memory returns the physical memory figures.
func (r *Reader) Memory(ctx context.Context) (Memory, error) {
	m, err := r.Source.Memory(ctx)
	if err != nil {
		r.Logger.Warn("memory info failed", zap.Error(err))
		return Memory{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	r.Logger.Debug("memory info", zap.Uint64("total", m.Total), zap.Uint64("available", m.Available))
	return m, nil
}

// GiB renders a byte count in gibibytes with two decimals, e.g. "15.87 GB".
func GiB(bytes uint64) string {
	return fmt.Sprintf("%.2f GB", float64(bytes)/(1<<30))
}
