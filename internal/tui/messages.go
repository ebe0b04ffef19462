package tui

import (
	"github.com/dloza02/dlo-creative-lab/internal/cache"
)

type articlesLoadedMsg struct {
	articles []cache.Article
}

type loadErrMsg struct {
	err error
}
