package envelope

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
)

// CachedEvaluator serves repeated evaluations of the same
// (shape, params, t) triple from a TTL cache. Calibration loops tend
// to re-request unchanged envelopes between optimizer steps.
type CachedEvaluator struct {
	logger l.Wrapper

	reg     *Registry
	results *cache.Cache
}

func NewCachedEvaluator(reg *Registry, ttl time.Duration, logger l.Wrapper) *CachedEvaluator {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "cachedEvaluator"))

	if reg == nil {
		logger.Fatal("no registry")
	}

	if ttl <= 0 {
		ttl = time.Minute
	}

	return &CachedEvaluator{
		logger:  logger,
		reg:     reg,
		results: cache.New(ttl, ttl),
	}
}

func (impl *CachedEvaluator) Evaluate(name string, t []float64, params Params) (vs []float64, err error) {
	key := evalKey(name, t, params)

	if v, ok := impl.results.Get(key); ok {
		cached, _ := v.([]float64)

		vs = make([]float64, len(cached))
		copy(vs, cached)

		return
	}

	vs, err = impl.reg.Evaluate(name, t, params)
	if err != nil {
		return
	}

	stored := make([]float64, len(vs))
	copy(stored, vs)

	impl.results.SetDefault(key, stored)

	return
}

// evalKey fingerprints a call. Parameter keys are sorted so two maps
// with the same content always collapse to the same key.
func evalKey(name string, t []float64, params Params) string {
	var sb strings.Builder

	sb.WriteString(name)

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		sb.WriteByte('|')
		sb.WriteString(k)

		for _, v := range params[k].Values() {
			sb.WriteByte(':')
			sb.WriteString(strconv.FormatFloat(v, 'x', -1, 64))
		}
	}

	sb.WriteByte('|')

	for _, v := range t {
		sb.WriteByte(':')
		sb.WriteString(strconv.FormatFloat(v, 'x', -1, 64))
	}

	return sb.String()
}
