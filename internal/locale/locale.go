// Package locale holds the localized templates and the menu command table.
//
// Every label a user can press is mapped to exactly one Command. Labels are
// matched exactly after normalization, or by their leading prefix token (an
// icon or "/start"). Parse rejects any label or prefix claimed by two
// different commands, so adding a locale cannot silently shadow a command.
package locale

import (
	_ "embed"
	"fmt"
	"reflect"
	"strings"

	"medinabot/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed texts.yaml
var defaultTexts []byte

// Command is a normalized menu command identifier
type Command string

const (
	CmdStart          Command = "start"
	CmdLogin          Command = "login"
	CmdAsk            Command = "ask"
	CmdChangeLanguage Command = "change_language"
	CmdLangID         Command = "lang_id"
	CmdLangEN         Command = "lang_en"
	CmdLangAR         Command = "lang_ar"
	CmdStatus         Command = "status"
	CmdAdminPanel     Command = "admin_panel"
	CmdListUsers      Command = "list_users"
	CmdFindUser       Command = "find_user"
	CmdSetLimit       Command = "set_limit"
	CmdBlockUser      Command = "block_user"
	CmdUnblockUser    Command = "unblock_user"
	CmdBack           Command = "back"
)

var knownCommands = map[Command]bool{
	CmdStart: true, CmdLogin: true, CmdAsk: true, CmdChangeLanguage: true,
	CmdLangID: true, CmdLangEN: true, CmdLangAR: true, CmdStatus: true,
	CmdAdminPanel: true, CmdListUsers: true, CmdFindUser: true, CmdSetLimit: true,
	CmdBlockUser: true, CmdUnblockUser: true, CmdBack: true,
}

// sharedCommands carry the same label in every locale
var sharedCommands = []Command{CmdStart, CmdLangID, CmdLangEN, CmdLangAR}

// localizedCommands must have a label in every locale
var localizedCommands = []Command{
	CmdLogin, CmdAsk, CmdChangeLanguage, CmdStatus, CmdAdminPanel, CmdListUsers,
	CmdFindUser, CmdSetLimit, CmdBlockUser, CmdUnblockUser, CmdBack,
}

// LanguageCommands maps the locale picker entries to their language
var LanguageCommands = map[Command]domain.Language{
	CmdLangID: domain.LanguageIndonesian,
	CmdLangEN: domain.LanguageEnglish,
	CmdLangAR: domain.LanguageArabic,
}

// Texts is the template set of one locale
type Texts struct {
	Welcome        string `yaml:"welcome"`
	LoginOK        string `yaml:"login_ok"`
	ChooseLanguage string `yaml:"choose_language"`
	BackToMenu     string `yaml:"back_to_menu"`
	AskNow         string `yaml:"ask_now"`
	LimitReached   string `yaml:"limit_reached"`
	Blocked        string `yaml:"blocked"`
	Unlimited      string `yaml:"unlimited"`
	Failure        string `yaml:"failure"`
	Disclaimer     string `yaml:"disclaimer"`
	// Status takes fatwaUsed, fatwaLimit, questionUsed, questionLimit
	Status     string `yaml:"status"`
	AdminPanel string `yaml:"admin_panel"`
	ChooseUser string `yaml:"choose_user"`
	NoUsers    string `yaml:"no_users"`
	// UserDetail takes handle, id, blocked, unlimited, fatwa used/limit, question used/limit, reset day
	UserDetail     string `yaml:"user_detail"`
	RecentActivity string `yaml:"recent_activity"`
	UserNotFound   string `yaml:"user_not_found"`
	InvalidUserID  string `yaml:"invalid_user_id"`
	EnterUserID    string `yaml:"enter_user_id"`
	EnterLimits    string `yaml:"enter_limits"`
	InvalidLimits  string `yaml:"invalid_limits"`
	LimitsUpdated  string `yaml:"limits_updated"`
	UnlimitedOn    string `yaml:"unlimited_on"`
	UnlimitedOff   string `yaml:"unlimited_off"`
	UserBlocked    string `yaml:"user_blocked"`
	UserUnblocked  string `yaml:"user_unblocked"`
	Cancelled      string `yaml:"cancelled"`
	Today          string `yaml:"today"`
	Yesterday      string `yaml:"yesterday"`
	BtnSetLimit    string `yaml:"btn_set_limit"`
	BtnUnlimited   string `yaml:"btn_unlimited"`
	BtnBlock       string `yaml:"btn_block"`
	BtnUnblock     string `yaml:"btn_unblock"`
	BtnCancel      string `yaml:"btn_cancel"`
}

// Locale is one language's labels and templates
type Locale struct {
	Labels map[Command]string `yaml:"labels"`
	Texts  Texts              `yaml:"texts"`
}

type file struct {
	Shared   map[Command]string          `yaml:"shared"`
	Prefixes map[string]Command          `yaml:"prefixes"`
	Locales  map[domain.Language]*Locale `yaml:"locales"`
}

// Catalog resolves templates per language and text to commands
type Catalog struct {
	shared   map[Command]string
	locales  map[domain.Language]*Locale
	labels   map[string]Command
	prefixes map[string]Command
}

// Load parses the embedded templates
func Load() (*Catalog, error) {
	return Parse(defaultTexts)
}

// Parse builds a catalog from YAML and validates the command table
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse locale YAML: %w", err)
	}

	c := &Catalog{
		shared:   f.Shared,
		locales:  f.Locales,
		labels:   make(map[string]Command),
		prefixes: make(map[string]Command),
	}

	for _, cmd := range sharedCommands {
		label := f.Shared[cmd]
		if label == "" {
			return nil, fmt.Errorf("shared label %q is missing", cmd)
		}
		if err := c.bindLabel(label, cmd); err != nil {
			return nil, err
		}
	}

	for _, lang := range domain.Languages {
		loc, ok := f.Locales[lang]
		if !ok || loc == nil {
			return nil, fmt.Errorf("locale %q is missing", lang)
		}
		for cmd := range loc.Labels {
			if !knownCommands[cmd] {
				return nil, fmt.Errorf("locale %q: unknown command %q", lang, cmd)
			}
		}
		for _, cmd := range localizedCommands {
			label := loc.Labels[cmd]
			if label == "" {
				return nil, fmt.Errorf("locale %q: label %q is missing", lang, cmd)
			}
			if err := c.bindLabel(label, cmd); err != nil {
				return nil, fmt.Errorf("locale %q: %w", lang, err)
			}
		}
		if missing := emptyFields(loc.Texts); len(missing) > 0 {
			return nil, fmt.Errorf("locale %q: missing texts %v", lang, missing)
		}
	}

	for prefix, cmd := range f.Prefixes {
		if !knownCommands[cmd] {
			return nil, fmt.Errorf("prefix %q: unknown command %q", prefix, cmd)
		}
		key := normalize(prefix)
		if existing, ok := c.prefixes[key]; ok && existing != cmd {
			return nil, fmt.Errorf("prefix %q bound to both %q and %q", prefix, existing, cmd)
		}
		c.prefixes[key] = cmd
	}

	return c, nil
}

func (c *Catalog) bindLabel(label string, cmd Command) error {
	key := normalize(label)
	if existing, ok := c.labels[key]; ok && existing != cmd {
		return fmt.Errorf("label %q bound to both %q and %q", label, existing, cmd)
	}
	c.labels[key] = cmd
	return nil
}

// For returns the locale of lang, falling back to Indonesian
func (c *Catalog) For(lang domain.Language) *Locale {
	if loc, ok := c.locales[lang]; ok {
		return loc
	}
	return c.locales[domain.LanguageIndonesian]
}

// Label returns the button text of cmd in lang
func (c *Catalog) Label(lang domain.Language, cmd Command) string {
	if label, ok := c.shared[cmd]; ok {
		return label
	}
	return c.For(lang).Labels[cmd]
}

// Match resolves free text to a command.
// Exact labels win over prefix tokens.
func (c *Catalog) Match(text string) (Command, bool) {
	key := normalize(text)
	if key == "" {
		return "", false
	}
	if cmd, ok := c.labels[key]; ok {
		return cmd, true
	}

	first := strings.Fields(key)[0]
	if strings.HasPrefix(first, "/") {
		// group chats address commands as /start@BotName
		first, _, _ = strings.Cut(first, "@")
	}
	cmd, ok := c.prefixes[first]
	return cmd, ok
}

// normalize trims whitespace and drops emoji variation selectors
func normalize(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\uFE0F", ""))
}

func emptyFields(t Texts) []string {
	var missing []string
	v := reflect.ValueOf(t)
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).String() == "" {
			missing = append(missing, v.Type().Field(i).Tag.Get("yaml"))
		}
	}
	return missing
}
