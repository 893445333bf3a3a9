package service

import (
	"fmt"

	"medinabot/internal/domain"
	"medinabot/internal/locale"
)

// mainMenu returns the main reply keyboard; admins also get the panel entry
func mainMenu(catalog *locale.Catalog, lang domain.Language, isAdmin bool) [][]string {
	rows := [][]string{
		{catalog.Label(lang, locale.CmdAsk)},
		{catalog.Label(lang, locale.CmdChangeLanguage)},
	}
	if isAdmin {
		rows = append(rows, []string{catalog.Label(lang, locale.CmdAdminPanel)})
	}
	return append(rows, []string{catalog.Label(lang, locale.CmdStatus)})
}

func loginMenu(catalog *locale.Catalog, lang domain.Language) [][]string {
	return [][]string{{catalog.Label(lang, locale.CmdLogin)}}
}

func languageMenu(catalog *locale.Catalog, lang domain.Language) [][]string {
	return [][]string{
		{catalog.Label(lang, locale.CmdLangID)},
		{catalog.Label(lang, locale.CmdLangEN)},
		{catalog.Label(lang, locale.CmdLangAR)},
		{catalog.Label(lang, locale.CmdBack)},
	}
}

func adminPanelMenu(catalog *locale.Catalog, lang domain.Language) [][]string {
	return [][]string{
		{catalog.Label(lang, locale.CmdListUsers)},
		{catalog.Label(lang, locale.CmdFindUser), catalog.Label(lang, locale.CmdSetLimit)},
		{catalog.Label(lang, locale.CmdBlockUser), catalog.Label(lang, locale.CmdUnblockUser)},
		{catalog.Label(lang, locale.CmdBack)},
	}
}

// userButtons lists every user as a detail button
func userButtons(users []domain.Session) [][]domain.Button {
	rows := make([][]domain.Button, 0, len(users))
	for _, u := range users {
		rows = append(rows, []domain.Button{{
			Label: fmt.Sprintf("%s (%d)", u.Handle(), u.UserID),
			Data:  CallbackData(CallbackDetail, u.UserID),
		}})
	}
	return rows
}

// detailButtons binds the follow-up actions to a target
func detailButtons(texts locale.Texts, targetID int64) [][]domain.Button {
	return [][]domain.Button{
		{{Label: texts.BtnSetLimit, Data: CallbackData(CallbackSetLimit, targetID)}},
		{{Label: texts.BtnUnlimited, Data: CallbackData(CallbackUnlimited, targetID)}},
		{{Label: texts.BtnBlock, Data: CallbackData(CallbackBlock, targetID)}},
		{{Label: texts.BtnUnblock, Data: CallbackData(CallbackUnblock, targetID)}},
	}
}

func cancelButton(texts locale.Texts) [][]domain.Button {
	return [][]domain.Button{{{Label: texts.BtnCancel, Data: CallbackCancel}}}
}
