package service

import (
	"github.com/aideadlines/slack-deadline-bot/internal/domain/contract"
)

type Instance struct {
	Conference *conferenceService
	Policy     *policyService
	Notifier   *notifierService
}

func NewInstance(dm contract.DataManager, provider contract.ConferenceProvider, dispatcher contract.Dispatcher, opts NotifierOptions) *Instance {
	return &Instance{
		Conference: newConference(provider),
		Policy:     newPolicy(dm),
		Notifier:   newNotifier(dm, provider, dispatcher, opts),
	}
}
