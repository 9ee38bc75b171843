// Package server exposes the calculator over HTTP: an embedded single-page
// form UI plus a small JSON API.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/Mrfrozenthunder/loan-calculator/internal/calculator"
	"github.com/Mrfrozenthunder/loan-calculator/pkg/constants"
	"github.com/Mrfrozenthunder/loan-calculator/pkg/format"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger         *zap.Logger
	maxRequestSize int64
	fundingPolicy  string
	version        string
}

// NewHandler constructs the HTTP handler that serves the web UI and
// calculation API. fundingPolicy is the default policy applied when a
// request does not specify one.
func NewHandler(logger *zap.Logger, maxRequestSize int64, fundingPolicy, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	if fundingPolicy == "" {
		fundingPolicy = constants.FundingPolicyProportional
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:         logger,
		maxRequestSize: maxRequestSize,
		fundingPolicy:  fundingPolicy,
		version:        trimmedVersion,
	}

	mux := http.NewServeMux()

	// Calculation API endpoint
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Scenario serialization endpoint for downloads
	mux.HandleFunc("/api/export", h.handleScenarioExport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return mux
}

type calculateRequest struct {
	Inputs  inputsPayload  `json:"inputs"`
	Options optionsPayload `json:"options"`
}

// inputsPayload uses pointers so missing fields are distinguishable from
// zero values; all eight fields are required.
type inputsPayload struct {
	ProjectCapex    *float64 `json:"projectCapex"`
	EquityShare     *float64 `json:"equityShare"`
	BankLoan        *float64 `json:"bankLoan"`
	BankRate        *float64 `json:"bankRate"`
	TenureYears     *int     `json:"tenureYears"`
	PremiumRate     *float64 `json:"premiumRate"`
	PartnerLoanRate *float64 `json:"partnerLoanRate"`
	TargetShare     *float64 `json:"targetShare"`
}

type optionsPayload struct {
	FundingPolicy string `json:"fundingPolicy"`
}

type calculateResponse struct {
	FundingPolicy string            `json:"fundingPolicy"`
	Result        resultPayload     `json:"result"`
	Formatted     map[string]string `json:"formatted"`
	Duration      string            `json:"duration"`
}

type resultPayload struct {
	PartnerAPrincipal      float64 `json:"partnerAPrincipal"`
	BankEMI                float64 `json:"bankEMI"`
	PartnerAEMI            float64 `json:"partnerAEMI"`
	PartnerBCDEMI          float64 `json:"partnerBCDEMI"`
	PartnerAShare          float64 `json:"partnerAShare"`
	PartnerBCDShare        float64 `json:"partnerBCDShare"`
	EffectiveOwnershipCost float64 `json:"effectiveOwnershipCost"`
	TotalOutflow           float64 `json:"totalOutflow"`

	PartnerLoanPrincipal    *float64 `json:"partnerLoanPrincipal,omitempty"`
	PartnerLoanEMI          *float64 `json:"partnerLoanEMI,omitempty"`
	FinalPartnerAShare      float64  `json:"finalPartnerAShare"`
	FinalPartnerAEMI        float64  `json:"finalPartnerAEMI"`
	FinalPartnerBCDTotalEMI float64  `json:"finalPartnerBCDTotalEMI"`
}

func (p inputsPayload) toLoanInputs() (calculator.LoanInputs, error) {
	required := []struct {
		name    string
		present bool
	}{
		{"projectCapex", p.ProjectCapex != nil},
		{"equityShare", p.EquityShare != nil},
		{"bankLoan", p.BankLoan != nil},
		{"bankRate", p.BankRate != nil},
		{"tenureYears", p.TenureYears != nil},
		{"premiumRate", p.PremiumRate != nil},
		{"partnerLoanRate", p.PartnerLoanRate != nil},
		{"targetShare", p.TargetShare != nil},
	}
	for _, field := range required {
		if !field.present {
			return calculator.LoanInputs{}, fmt.Errorf("missing required input %s", field.name)
		}
	}

	return calculator.LoanInputs{
		ProjectCapex:    *p.ProjectCapex,
		EquityShare:     *p.EquityShare,
		BankLoan:        *p.BankLoan,
		BankRate:        *p.BankRate,
		TenureYears:     *p.TenureYears,
		PremiumRate:     *p.PremiumRate,
		PartnerLoanRate: *p.PartnerLoanRate,
		TargetShare:     *p.TargetShare,
	}, nil
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var payload calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize))
			return
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	inputs, err := payload.Inputs.toLoanInputs()
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	policy := payload.Options.FundingPolicy
	if policy == "" {
		policy = h.fundingPolicy
	}

	calc, err := calculator.New(h.logger, policy)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := calc.Evaluate(inputs)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	elapsed := time.Since(start)

	h.logger.Info("calculation completed",
		zap.String("op", "server.handleCalculate"),
		zap.String("fundingPolicy", policy),
		zap.Bool("partnerLoan", result.HasPartnerLoan),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, calculateResponse{
		FundingPolicy: policy,
		Result:        buildResultPayload(result),
		Formatted:     buildFormatted(result),
		Duration:      elapsed.String(),
	})
}

func buildResultPayload(result *calculator.CalculationResult) resultPayload {
	payload := resultPayload{
		PartnerAPrincipal:       result.PartnerAPrincipal,
		BankEMI:                 result.BankEMI,
		PartnerAEMI:             result.PartnerAEMI,
		PartnerBCDEMI:           result.PartnerBCDEMI,
		PartnerAShare:           result.PartnerAShare,
		PartnerBCDShare:         result.PartnerBCDShare,
		EffectiveOwnershipCost:  result.EffectiveOwnershipCost,
		TotalOutflow:            result.TotalOutflow,
		FinalPartnerAShare:      result.FinalPartnerAShare,
		FinalPartnerAEMI:        result.FinalPartnerAEMI,
		FinalPartnerBCDTotalEMI: result.FinalPartnerBCDTotalEMI,
	}
	if result.HasPartnerLoan {
		principal := result.PartnerLoanPrincipal
		emi := result.PartnerLoanEMI
		payload.PartnerLoanPrincipal = &principal
		payload.PartnerLoanEMI = &emi
	}
	return payload
}

func buildFormatted(result *calculator.CalculationResult) map[string]string {
	formatted := map[string]string{
		"bankEMI":                format.Currency(result.BankEMI),
		"partnerAEMI":            format.Currency(result.PartnerAEMI),
		"partnerBCDEMI":          format.Currency(result.PartnerBCDEMI),
		"partnerAShare":          format.Percent(result.PartnerAShare),
		"partnerBCDShare":        format.Percent(result.PartnerBCDShare),
		"partnerAPrincipal":      format.Currency(result.PartnerAPrincipal),
		"effectiveOwnershipCost": format.Percent(result.EffectiveOwnershipCost),
		"totalOutflow":           format.Currency(result.TotalOutflow),
	}
	if result.HasPartnerLoan {
		formatted["partnerLoanPrincipal"] = format.Currency(result.PartnerLoanPrincipal)
		formatted["partnerLoanEMI"] = format.Currency(result.PartnerLoanEMI)
		formatted["finalPartnerAShare"] = format.Percent(result.FinalPartnerAShare)
		formatted["finalPartnerAEMI"] = format.Currency(result.FinalPartnerAEMI)
		formatted["finalPartnerBCDTotalEMI"] = format.Currency(result.FinalPartnerBCDTotalEMI)
	}
	return formatted
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleScenarioExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("failed to decode scenario: %v", err), "server.handleScenarioExport")
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	yamlBytes, err := marshalOrderedScenarioYAML(payload)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("failed to encode scenario: %v", err), "server.handleScenarioExport")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

// marshalOrderedScenarioYAML keeps the well-known sections first so exported
// files diff cleanly against hand-written configs.
func marshalOrderedScenarioYAML(payload map[string]interface{}) ([]byte, error) {
	items := make([]orderedItem, 0, len(payload))
	seen := make(map[string]struct{})

	for _, key := range []string{"calculator", "logging", "output"} {
		if value, ok := payload[key]; ok {
			items = append(items, orderedItem{key: key, value: value})
			seen[key] = struct{}{}
		}
	}

	remainingKeys := make([]string, 0, len(payload))
	for key := range payload {
		if _, already := seen[key]; already {
			continue
		}
		remainingKeys = append(remainingKeys, key)
	}
	sort.Strings(remainingKeys)
	for _, key := range remainingKeys {
		items = append(items, orderedItem{key: key, value: payload[key]})
	}

	ordered := orderedScenario{items: items}
	return yaml.Marshal(ordered)
}

type orderedScenario struct {
	items []orderedItem
}

type orderedItem struct {
	key   string
	value interface{}
}

func (o orderedScenario) MarshalYAML() (interface{}, error) {
	mapNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, item := range o.items {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: item.key,
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(item.value); err != nil {
			return nil, err
		}
		mapNode.Content = append(mapNode.Content, keyNode, valueNode)
	}

	return mapNode, nil
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondErrorWithOp(w, status, msg, "server.handleCalculate")
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("calculation request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
