package widgets

import (
	"strings"

	"github.com/atomicstack/niri-panel/internal/config"
	"github.com/atomicstack/niri-panel/internal/registry"
)

// Git owns the repositories popover and resolves web links for its entries.
type Git struct {
	*Popover
	repositories []RepoLink
}

// RepoLink is a configured repository with its resolved web URLs.
type RepoLink struct {
	Name      string
	Path      string
	URL       string
	IssuesURL string
}

func NewGit(cfg config.GitConfig) *Git {
	return &Git{Popover: NewPopover(registry.Git), repositories: resolveRepos(cfg)}
}

// Repositories returns the configured repositories with their links.
func (g *Git) Repositories() []RepoLink {
	out := make([]RepoLink, len(g.repositories))
	copy(out, g.repositories)
	return out
}

// resolveRepos fills in web URLs from the repository's service patterns. An
// explicit url in the config wins over the pattern.
func resolveRepos(cfg config.GitConfig) []RepoLink {
	services := make(map[string]config.GitService, len(cfg.Services))
	for _, service := range cfg.Services {
		services[service.Name] = service
	}

	links := make([]RepoLink, 0, len(cfg.Repositories))
	for _, repo := range cfg.Repositories {
		link := RepoLink{Name: repo.Name, Path: repo.Path, URL: repo.URL}
		if service, ok := services[repo.Service]; ok {
			if link.URL == "" {
				link.URL = strings.ReplaceAll(service.URLPattern, "%s", repo.Name)
			}
			link.IssuesURL = strings.ReplaceAll(service.IssuesPattern, "%s", repo.Name)
		}
		links = append(links, link)
	}
	return links
}
