package conversationimpl

import (
	"go.uber.org/fx"

	"github.com/Henrique28122000/meuchat-engine/internal/conversation"
	"github.com/Henrique28122000/meuchat-engine/internal/transport"
	"github.com/Henrique28122000/meuchat-engine/pkg/config"
	"github.com/Henrique28122000/meuchat-engine/pkg/logger"
)

type Opts struct {
	fx.In

	Transport transport.Client
	Logger    logger.Logger
	Config    *config.Config
}

type FactoryImpl struct {
	Transport transport.Client
	Logger    logger.Logger
	Config    *config.Config
}

func New(opts Opts) *FactoryImpl {
	return &FactoryImpl{
		Transport: opts.Transport,
		Logger:    opts.Logger,
		Config:    opts.Config,
	}
}

var _ conversation.Factory = (*FactoryImpl)(nil)

func (f *FactoryImpl) Session(peerID string) conversation.Session {
	return newSession(f.Config.Session.UserID, peerID, f.Config.Poll.Conversation, f.Transport, f.Logger)
}
