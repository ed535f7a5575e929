// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"github.com/alvinbaena/pwd-analyst/internal/report"
	"github.com/alvinbaena/pwd-analyst/pkg/strength"
	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/ristretto"
	"github.com/gin-gonic/gin"
	"net/http"
)

// maxGenerateLength keeps a single request from allocating unbounded memory.
const maxGenerateLength = 4096

type strengthApi struct {
	// zxcvbn is the slow part of a request. Only key hashes are kept, not the passwords.
	opinions  *ristretto.Cache
	generator *strength.Generator
}

func newEvaluateResponse(a report.Analysis) evaluateResponse {
	resp := evaluateResponse{
		Score:     a.Result.Score,
		MaxScore:  strength.MaxScore,
		Band:      report.BandFor(a.Result.Score).String(),
		Verdict:   report.Verdict(a.Result.Score),
		Hints:     a.Result.Hints(),
		Checks:    checks(a.Result),
		CrackTime: a.CrackTime,
	}

	if a.Opinion != nil {
		resp.Zxcvbn = &zxcvbnResponse{
			Score:            a.Opinion.Score,
			CrackTimeDisplay: a.Opinion.CrackTimeDisplay,
		}
	}

	return resp
}

func checks(res strength.Result) map[string]bool {
	m := make(map[string]bool, strength.MaxScore)
	for c := strength.CheckLength; c <= strength.CheckPattern; c++ {
		m[c.String()] = res.Passed(c)
	}

	return m
}

func (s *strengthApi) opinion(password string) report.SecondOpinion {
	if cached, ok := s.opinions.Get(password); ok {
		if o, ok := cached.(report.SecondOpinion); ok {
			return o
		}
	}

	o := report.Compare(password)
	s.opinions.Set(password, o, 1)
	return o
}

func (s *strengthApi) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := report.Analyze(*req.Password, false)
	if report.Comparable(*req.Password) {
		opinion := s.opinion(*req.Password)
		a.Opinion = &opinion
	}

	c.JSON(http.StatusOK, newEvaluateResponse(a))
}

func (s *strengthApi) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if *req.Length > maxGenerateLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "length must not exceed 4096"})
		return
	}

	password, err := s.generator.Generate(*req.Length)
	if err != nil {
		if errors.Is(err, strength.ErrInvalidLength) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, generateResponse{
		Password:         password,
		evaluateResponse: newEvaluateResponse(report.Analyze(password, false)),
	})
}

func RegisterStrengthApi(group *gin.RouterGroup, cacheSize int64) error {
	if cacheSize < 1 {
		cacheSize = 1
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cacheSize * 10,
		MaxCost:     cacheSize,
		BufferItems: 64,
	})
	if err != nil {
		return errors.Wrap(err, "creating zxcvbn cache")
	}

	s := &strengthApi{opinions: cache, generator: strength.NewGenerator(nil)}

	group.POST("/evaluate", s.evaluate)
	group.POST("/generate", s.generate)

	return nil
}
