package i18n

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// message é uma entrada do catálogo; tmpl é nil quando o texto não tem parâmetros
type message struct {
	text string
	tmpl *template.Template
}

type catalog map[string]message

// Service resolve chaves de mensagem para textos localizados.
// Os catálogos são imutáveis depois de carregados.
type Service struct {
	catalogs        map[string]catalog
	languages       []string
	defaultLanguage string
}

// NewEmbeddedService cria o serviço com os catálogos embutidos no binário
func NewEmbeddedService(defaultLang string) (*Service, error) {
	locales, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded locales: %w", err)
	}
	return NewService(locales, defaultLang)
}

// NewService carrega um catálogo por arquivo <idioma>.json na raiz de locales.
// Templates inválidos falham aqui, não na primeira requisição.
func NewService(locales fs.FS, defaultLang string) (*Service, error) {
	files, err := fs.Glob(locales, "*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to find locale files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}

	s := &Service{
		catalogs:        make(map[string]catalog, len(files)),
		defaultLanguage: defaultLang,
	}

	for _, file := range files {
		lang := strings.TrimSuffix(path.Base(file), ".json")

		c, err := loadCatalog(locales, file)
		if err != nil {
			return nil, err
		}
		s.catalogs[lang] = c
		s.languages = append(s.languages, lang)
	}
	sort.Strings(s.languages)

	if _, ok := s.catalogs[defaultLang]; !ok {
		return nil, fmt.Errorf("default language %s not found in locale files", defaultLang)
	}

	return s, nil
}

func loadCatalog(locales fs.FS, file string) (catalog, error) {
	data, err := fs.ReadFile(locales, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale file %s: %w", file, err)
	}

	var texts map[string]string
	if err := json.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("failed to parse locale file %s: %w", file, err)
	}

	c := make(catalog, len(texts))
	for key, text := range texts {
		m := message{text: text}
		if strings.Contains(text, "{{") {
			m.tmpl, err = template.New(key).Parse(text)
			if err != nil {
				return nil, fmt.Errorf("invalid message %q in %s: %w", key, file, err)
			}
		}
		c[key] = m
	}
	return c, nil
}

// T traduz key para lang, caindo para o idioma padrão e por fim para a própria chave.
// params alimenta o template da mensagem ({{.ID}}, {{.Resource}}, ...).
func (s *Service) T(lang, key string, params ...map[string]any) string {
	m, ok := s.catalogs[lang][key]
	if !ok {
		m, ok = s.catalogs[s.defaultLanguage][key]
	}
	if !ok {
		return key
	}

	if m.tmpl == nil || len(params) == 0 || params[0] == nil {
		return m.text
	}

	var buf bytes.Buffer
	if err := m.tmpl.Execute(&buf, params[0]); err != nil {
		return m.text
	}
	return buf.String()
}

// MissingKeys lista as chaves do idioma padrão ausentes em lang
func (s *Service) MissingKeys(lang string) []string {
	var missing []string
	for key := range s.catalogs[s.defaultLanguage] {
		if _, ok := s.catalogs[lang][key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// GetDefaultLanguage retorna o idioma padrão configurado
func (s *Service) GetDefaultLanguage() string {
	return s.defaultLanguage
}

// GetSupportedLanguages retorna os idiomas carregados em ordem alfabética
func (s *Service) GetSupportedLanguages() []string {
	return append([]string(nil), s.languages...)
}

// IsLanguageSupported verifica se há catálogo para lang
func (s *Service) IsLanguageSupported(lang string) bool {
	_, ok := s.catalogs[lang]
	return ok
}
