package bot

import "github.com/bwmarrin/discordgo"

type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func optionsByName(data discordgo.ApplicationCommandInteractionData) options {
	byName := make(options, len(data.Options))

	for _, option := range data.Options {
		byName[option.Name] = option
	}

	return byName
}

func (o options) str(name string) string {
	option, ok := o[name]
	if !ok {
		return ""
	}

	return option.StringValue()
}

func (o options) number(name string) float64 {
	option, ok := o[name]
	if !ok {
		return 0
	}

	return option.FloatValue()
}
