package voice

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"
)

// sessionProvider implements RosterProvider, CapabilityProvider and
// Editor over a live discordgo session, preferring the state cache and
// falling back to the REST API.
type sessionProvider struct {
	session *discordgo.Session
	log     *logrus.Logger
}

func newSessionProvider(session *discordgo.Session, log *logrus.Logger) *sessionProvider {
	return &sessionProvider{
		session: session,
		log:     log,
	}
}

func (p *sessionProvider) guild(guildID string) (*discordgo.Guild, error) {
	guild, err := p.session.State.Guild(guildID)
	if err == nil {
		return guild, nil
	}

	return p.session.Guild(guildID)
}

func (p *sessionProvider) member(guildID, userID string) (*discordgo.Member, error) {
	member, err := p.session.State.Member(guildID, userID)
	if err == nil {
		return member, nil
	}

	return p.session.GuildMember(guildID, userID)
}

// VoiceChannel implements RosterProvider.
func (p *sessionProvider) VoiceChannel(guildID, userID string) (string, error) {
	guild, err := p.guild(guildID)
	if err != nil {
		return "", err
	}

	for _, vs := range guild.VoiceStates {
		if vs.UserID == userID {
			return vs.ChannelID, nil
		}
	}

	return "", nil
}

// Roster implements RosterProvider.
func (p *sessionProvider) Roster(guildID, channelID string) ([]Member, error) {
	guild, err := p.guild(guildID)
	if err != nil {
		return nil, err
	}

	var roster []Member

	for _, vs := range guild.VoiceStates {
		if vs.ChannelID != channelID {
			continue
		}

		member, err := p.member(guildID, vs.UserID)
		if err != nil {
			p.log.WithError(err).WithField("user", vs.UserID).Error("Loading member")

			continue
		}

		roster = append(roster, Member{
			ID:          vs.UserID,
			DisplayName: displayName(member),
			Bot:         member.User != nil && member.User.Bot,
			Mute:        vs.Mute,
			Deaf:        vs.Deaf,
		})
	}

	return roster, nil
}

// MemberCapability implements CapabilityProvider.
func (p *sessionProvider) MemberCapability(guildID, userID string) (Capability, error) {
	perms, err := p.memberPermissions(guildID, userID)
	if err != nil {
		return Capability{}, err
	}

	return Capability{
		Mute:   perms&discordgo.PermissionVoiceMuteMembers != 0,
		Deafen: perms&discordgo.PermissionVoiceDeafenMembers != 0,
	}, nil
}

// BotCapability implements CapabilityProvider.
func (p *sessionProvider) BotCapability(guildID string) (Capability, error) {
	return p.MemberCapability(guildID, p.session.State.User.ID)
}

// memberPermissions folds the guild-level permission set of a member
// from their roles. Channel overwrites do not affect mute/deafen.
func (p *sessionProvider) memberPermissions(guildID, userID string) (int64, error) {
	guild, err := p.guild(guildID)
	if err != nil {
		return 0, err
	}

	if guild.OwnerID == userID {
		return discordgo.PermissionAll, nil
	}

	member, err := p.member(guildID, userID)
	if err != nil {
		return 0, err
	}

	var perms int64

	for _, role := range guild.Roles {
		// @everyone shares the guild id
		if role.ID == guildID {
			perms |= role.Permissions
		}
	}

	for _, roleID := range member.Roles {
		for _, role := range guild.Roles {
			if role.ID == roleID {
				perms |= role.Permissions

				break
			}
		}
	}

	if perms&discordgo.PermissionAdministrator != 0 {
		return discordgo.PermissionAll, nil
	}

	return perms, nil
}

// EditVoiceState implements Editor.
func (p *sessionProvider) EditVoiceState(guildID, userID string, target Target) error {
	_, err := p.session.GuildMemberEdit(guildID, userID, &discordgo.GuildMemberParams{
		Mute: target.Mute,
		Deaf: target.Deaf,
	})

	return err
}

func displayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}

	if member.User != nil {
		return member.User.Username
	}

	return ""
}
