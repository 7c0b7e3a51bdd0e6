package services

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	lzstring "github.com/daku10/go-lz-string"

	"github.com/matyldajandova/handyhands-calculator/forms"
)

// DefaultCurrency is omitted from encoded tokens; every dropped byte matters
// because the token travels in a URL.
const DefaultCurrency = "CZK"

// CalculationData couples a calculation result with the form answers that
// produced it. The answers are the source of truth: the breakdown inside the
// result can always be regenerated from them.
type CalculationData struct {
	CalculationResult

	FormData forms.FormData `json:"formData,omitempty"`
}

// PoptavkaHashData is the full, self-describing payload carried across page
// loads in the URL hash instead of server-side session state.
type PoptavkaHashData struct {
	ServiceType     string           `json:"serviceType"`
	ServiceTitle    string           `json:"serviceTitle,omitempty"`
	TotalPrice      float64          `json:"totalPrice"`
	Currency        string           `json:"currency,omitempty"`
	OrderID         string           `json:"orderId,omitempty"`
	CalculationData *CalculationData `json:"calculationData,omitempty"`
}

// minimalHashData is the key-abbreviated projection of PoptavkaHashData.
// The breakdown is deliberately not carried: it is large, and fully implied
// by the form data plus the schema.
type minimalHashData struct {
	ST  string           `json:"st"`
	TI  string           `json:"ti,omitempty"`
	TP  float64          `json:"tp,omitempty"`
	CU  string           `json:"cu,omitempty"`
	OID string           `json:"oid,omitempty"`
	CD  *minimalCalcData `json:"cd,omitempty"`
}

type minimalCalcData struct {
	RCP float64        `json:"rcp,omitempty"`
	GCP float64        `json:"gcp,omitempty"`
	GCF string         `json:"gcf,omitempty"`
	TMP float64        `json:"tmp,omitempty"`
	HR  float64        `json:"hr,omitempty"`
	WMF float64        `json:"wmf,omitempty"`
	OID string         `json:"oid,omitempty"`
	FD  forms.FormData `json:"fd,omitempty"`
}

// EncodePoptavkaHash serializes hash data into a compact URL-safe token:
// minify, JSON, LZ-compress to a URI-safe alphabet. When compression does
// not save at least 10% over plain base64 (tiny or high-entropy payloads),
// the base64 form wins.
func EncodePoptavkaHash(data *PoptavkaHashData) (string, error) {
	raw, err := json.Marshal(minifyHashData(data))
	if err != nil {
		return "", err
	}

	plain := base64.StdEncoding.EncodeToString(raw)

	compressed, err := lzstring.CompressToEncodedURIComponent(string(raw))
	if err != nil || float64(len(compressed)) > 0.9*float64(len(plain)) {
		return url.QueryEscape(plain), nil
	}
	return compressed, nil
}

// DecodePoptavkaHash decodes a token produced by any historical format:
// LZ-compressed minimal, base64 minimal, or the legacy base64 full payload.
// Every failure path returns nil; callers treat nil as "no state, start
// fresh", never as an error.
func DecodePoptavkaHash(token string) *PoptavkaHashData {
	if token == "" {
		return nil
	}
	if data := tryDecodeCompressed(token); data != nil {
		return data
	}
	return tryDecodeBase64(token)
}

// tryDecodeCompressed handles the current format: LZ decompression into
// minimal-key JSON.
func tryDecodeCompressed(token string) *PoptavkaHashData {
	text, err := lzstring.DecompressFromEncodedURIComponent(token)
	if err != nil || text == "" {
		return nil
	}

	var minimal minimalHashData
	if err := json.Unmarshal([]byte(text), &minimal); err != nil || minimal.ST == "" {
		return nil
	}
	return expandHashData(&minimal)
}

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)

// tryDecodeBase64 handles both base64 formats. The token may have passed
// through URL encoding and may have lost its padding, so it is unescaped,
// charset-checked and re-padded before decoding. Tokens pasted without URL
// encoding are retried verbatim, since QueryUnescape turns their "+" into a
// space.
func tryDecodeBase64(token string) *PoptavkaHashData {
	candidates := []string{token}
	if unescaped, err := url.QueryUnescape(token); err == nil && unescaped != token {
		candidates = []string{unescaped, token}
	}

	var raw []byte
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if rem := len(candidate) % 4; rem != 0 {
			candidate += strings.Repeat("=", 4-rem)
		}
		if !base64Pattern.MatchString(candidate) {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(candidate)
		if err == nil && utf8.Valid(decoded) {
			raw = decoded
			break
		}
	}
	if raw == nil {
		return nil
	}

	// Sniff minimal vs. legacy-full by the abbreviated keys.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil
	}

	if _, hasST := probe["st"]; hasST {
		_, hasCD := probe["cd"]
		_, hasTP := probe["tp"]
		if hasCD || hasTP {
			var minimal minimalHashData
			if err := json.Unmarshal(raw, &minimal); err != nil || minimal.ST == "" {
				return nil
			}
			return expandHashData(&minimal)
		}
	}

	var full PoptavkaHashData
	if err := json.Unmarshal(raw, &full); err != nil || full.ServiceType == "" {
		return nil
	}
	return &full
}

// minifyHashData projects the full payload to abbreviated keys, dropping
// every empty or default value.
func minifyHashData(data *PoptavkaHashData) *minimalHashData {
	minimal := &minimalHashData{
		ST:  data.ServiceType,
		TI:  data.ServiceTitle,
		TP:  data.TotalPrice,
		OID: data.OrderID,
	}
	if data.Currency != "" && data.Currency != DefaultCurrency {
		minimal.CU = data.Currency
	}

	if cd := data.CalculationData; cd != nil {
		minimal.CD = &minimalCalcData{
			RCP: cd.RegularCleaningPrice,
			GCP: cd.GeneralCleaningPrice,
			GCF: cd.GeneralCleaningFrequency,
			TMP: cd.TotalMonthlyPrice,
			HR:  cd.HourlyRate,
			WMF: cd.WinterMaintenanceFee,
			OID: cd.OrderID,
			FD:  minifyFormData(cd.FormData),
		}
	}
	return minimal
}

// expandHashData is the inverse key renaming. The breakdown was never
// encoded, so a Pending placeholder is substituted; callers must run the
// reconstructor before treating the details as real.
func expandHashData(minimal *minimalHashData) *PoptavkaHashData {
	data := &PoptavkaHashData{
		ServiceType:  minimal.ST,
		ServiceTitle: minimal.TI,
		TotalPrice:   minimal.TP,
		Currency:     minimal.CU,
		OrderID:      minimal.OID,
	}
	if data.Currency == "" {
		data.Currency = DefaultCurrency
	}

	if cd := minimal.CD; cd != nil {
		data.CalculationData = &CalculationData{
			CalculationResult: CalculationResult{
				RegularCleaningPrice:     cd.RCP,
				GeneralCleaningPrice:     cd.GCP,
				GeneralCleaningFrequency: cd.GCF,
				TotalMonthlyPrice:        cd.TMP,
				HourlyRate:               cd.HR,
				WinterMaintenanceFee:     cd.WMF,
				OrderID:                  cd.OID,
				CalculationDetails: &CalculationDetails{
					BasePrice:           0,
					AppliedCoefficients: []AppliedCoefficient{},
					FinalCoefficient:    1,
					Pending:             true,
				},
			},
			FormData: cd.FD,
		}
	}
	return data
}

// companyFields duplicate information that is meaningless for private
// customers; they are stripped whenever isCompany is not set.
var companyFields = map[string]bool{
	"companyName":    true,
	"companyId":      true,
	"vatId":          true,
	"companyAddress": true,
}

// minifyFormData strips answers that carry no information: empty values,
// false flags, company identity without isCompany, and an invoice email that
// just repeats the contact email.
func minifyFormData(data forms.FormData) forms.FormData {
	if data == nil {
		return nil
	}

	isCompany := truthy(data["isCompany"])
	email, _ := data.StringValue("email")

	out := make(forms.FormData, len(data))
	for key, value := range data {
		if forms.IsEmptyValue(value) {
			continue
		}
		if b, isBool := value.(bool); isBool && !b {
			continue
		}
		if !isCompany && companyFields[key] {
			continue
		}
		if key == "invoiceEmail" {
			if s, ok := value.(string); ok && s == email {
				continue
			}
		}
		out[key] = value
	}
	return out
}

func truthy(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		switch val {
		case "", "false", "no", "0":
			return false
		}
		return true
	case float64:
		return val != 0
	}
	return false
}
