package locparsec

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config map[string]*cfgVal

// NewConfig creates a new configuration object primed with all the
// default values expected by the driver.  Programs embedding the
// library register their own settings on top of these with the
// setters before loading user configuration.
func NewConfig() *Config {
	m := make(Config)
	// only accept complete outcomes that consumed the whole input
	m.SetBool("driver.require_eof", true)
	// stop looking after this many outcomes (0 means never)
	m.SetInt("driver.max_outcomes", 0)
	// log every outcome the driver inspects at debug level
	m.SetBool("driver.log_outcomes", false)
	return &m
}

// Write prints all the settings sorted by key, aligned by the width
// of the longest key.
func (c *Config) Write(w io.Writer) {
	keys := make([]string, 0, len(*c))
	width := 0
	for k := range *c {
		keys = append(keys, k)
		width = max(width, len(k))
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "%s%s : %s\n", k, strings.Repeat(" ", width-len(k)), (*c)[k])
	}
}

// LoadYAML overrides settings with the ones found in the YAML
// document `data`.  Nested mappings are flattened into dotted keys, so
//
//	driver:
//	  max_outcomes: 10
//
// sets `driver.max_outcomes`.  Keys that don't exist in the
// configuration and values of the wrong type are errors.
func (c *Config) LoadYAML(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	flat := make(map[string]any)
	flatten("", doc, flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := c.assign(k, flat[k]); err != nil {
			return err
		}
	}
	return nil
}

func flatten(prefix string, doc map[string]any, out map[string]any) {
	for k, v := range doc {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(key, nested, out)
			continue
		}
		out[key] = v
	}
}

func (c *Config) assign(key string, value any) error {
	current, ok := (*c)[key]
	if !ok {
		return fmt.Errorf("config: unknown setting `%s`", key)
	}
	switch current.typ {
	case cfgValType_Bool:
		if v, ok := value.(bool); ok {
			c.SetBool(key, v)
			return nil
		}
	case cfgValType_Int:
		if v, ok := value.(int); ok {
			c.SetInt(key, v)
			return nil
		}
	case cfgValType_String:
		if v, ok := value.(string); ok {
			c.SetString(key, v)
			return nil
		}
	}
	return fmt.Errorf("config: setting `%s` expects %s, got %T", key, current.typ, value)
}

type cfgValType int

const (
	cfgValType_Undefined cfgValType = iota
	cfgValType_Bool
	cfgValType_Int
	cfgValType_String
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValType_Undefined: "undefined",
		cfgValType_Bool:      "bool",
		cfgValType_Int:       "int",
		cfgValType_String:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

// assignType is mostly for preventing programming errors, it panics
// if a setting changes its type
func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValType_Undefined {
		panic(fmt.Sprintf("Can't assign `%s` to type `%s`", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("Can't retrieve `%s` from `%s` variable", vt, v.typ))
	}
}

func (v *cfgVal) String() string {
	switch v.typ {
	case cfgValType_Bool:
		return fmt.Sprintf("%t (bool)", v.asBool)
	case cfgValType_Int:
		return fmt.Sprintf("%d (int)", v.asInt)
	case cfgValType_String:
		return fmt.Sprintf("%s (string)", v.asString)
	case cfgValType_Undefined:
		return "(undefined)"
	default:
		panic(fmt.Sprintf("unknown cfgVal type: %v", v.typ))
	}
}

func (c *Config) slot(path string, vt cfgValType) *cfgVal {
	val, ok := (*c)[path]
	if !ok {
		val = &cfgVal{}
		(*c)[path] = val
	}
	val.assignType(vt)
	return val
}

func (c *Config) SetBool(path string, v bool) {
	c.slot(path, cfgValType_Bool).asBool = v
}

func (c *Config) SetInt(path string, v int) {
	c.slot(path, cfgValType_Int).asInt = v
}

func (c *Config) SetString(path string, v string) {
	c.slot(path, cfgValType_String).asString = v
}

func (c *Config) GetBool(path string) bool {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Bool)
		return val.asBool
	}
	panic(fmt.Sprintf("Bool setting `%s` does not exist", path))
}

func (c *Config) GetInt(path string) int {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_Int)
		return val.asInt
	}
	panic(fmt.Sprintf("Int setting `%s` does not exist", path))
}

func (c *Config) GetString(path string) string {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValType_String)
		return val.asString
	}
	panic(fmt.Sprintf("String setting `%s` does not exist", path))
}
