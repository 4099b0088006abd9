package bot

import "github.com/bwmarrin/discordgo"

// Responder is the reply sink of one interaction: defer once, then edit the
// deferred message with the final content.
type Responder interface {
	Defer(ephemeral bool) error
	Edit(content string) error
}

type interactionResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

func (r *interactionResponder) Defer(ephemeral bool) error {
	response := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}

	if ephemeral {
		response.Data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}

	return r.session.InteractionRespond(r.interaction, response)
}

func (r *interactionResponder) Edit(content string) error {
	_, err := r.session.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{Content: &content})

	return err
}
