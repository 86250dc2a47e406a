// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package i18n

import "golang.org/x/text/language"

// Built-in language names.
const (
	English    = "ENGLISH"
	Portuguese = "PORTUGUESE"
	Spanish    = "SPANISH"
)

func builtinPacks() []*Pack {
	return []*Pack{
		{Name: English, Tag: language.English, Messages: map[string]string{
			"IUP_OK":           "OK",
			"IUP_CANCEL":       "Cancel",
			"IUP_YES":          "Yes",
			"IUP_NO":           "No",
			"IUP_HELP":         "Help",
			"IUP_ERROR":        "Error!",
			"IUP_ATTENTION":    "Attention!",
			"IUP_INFO":         "Information",
			"IUP_CLASSINFO":    "Class Information",
			"IUP_ATTRIBUTES":   "Attributes",
			"IUP_CALLBACKS":    "Callbacks",
			"IUP_HIERARCHY":    "Hierarchy",
			"IUP_NOTSUPPORTED": "Not supported by the driver.",
		}},
		{Name: Portuguese, Tag: language.Portuguese, Messages: map[string]string{
			"IUP_OK":           "OK",
			"IUP_CANCEL":       "Cancelar",
			"IUP_YES":          "Sim",
			"IUP_NO":           "Não",
			"IUP_HELP":         "Ajuda",
			"IUP_ERROR":        "Erro!",
			"IUP_ATTENTION":    "Atenção!",
			"IUP_INFO":         "Informação",
			"IUP_CLASSINFO":    "Informação de Classe",
			"IUP_ATTRIBUTES":   "Atributos",
			"IUP_CALLBACKS":    "Callbacks",
			"IUP_HIERARCHY":    "Hierarquia",
			"IUP_NOTSUPPORTED": "Não suportado pelo driver.",
		}},
		{Name: Spanish, Tag: language.Spanish, Messages: map[string]string{
			"IUP_OK":           "OK",
			"IUP_CANCEL":       "Cancelar",
			"IUP_YES":          "Sí",
			"IUP_NO":           "No",
			"IUP_HELP":         "Ayuda",
			"IUP_ERROR":        "¡Error!",
			"IUP_ATTENTION":    "¡Atención!",
			"IUP_INFO":         "Información",
			"IUP_CLASSINFO":    "Información de Clase",
			"IUP_ATTRIBUTES":   "Atributos",
			"IUP_CALLBACKS":    "Callbacks",
			"IUP_HIERARCHY":    "Jerarquía",
			"IUP_NOTSUPPORTED": "No soportado por el driver.",
		}},
	}
}
