// Package catalog は省庁・州の静的参照カタログを提供する。
// プロセス起動時に一度だけ構築され、以後変更されない読み取り専用データ。
package catalog

import "github.com/nigeriagovhub/backend/internal/model"

var ministries = []model.Ministry{
	{ID: "m1", Name: "Ministry of Works and Housing"},
	{ID: "m2", Name: "Ministry of Finance, Budget and National Planning"},
	{ID: "m3", Name: "Ministry of Education"},
	{ID: "m4", Name: "Ministry of Information and National Orientation"},
	{ID: "m5", Name: "Ministry of Agriculture and Rural Development"},
	{ID: "m6", Name: "Ministry of Communications and Digital Economy"},
	{ID: "m7", Name: "Ministry of Humanitarian Affairs, Disaster Management and Social Development"},
	{ID: "m8", Name: "Ministry of Defence"},
	{ID: "m9", Name: "Ministry of Environment"},
	{ID: "m10", Name: "Ministry of Federal Capital Territory (FCT)"},
	{ID: "m11", Name: "Ministry of Foreign Affairs"},
	{ID: "m12", Name: "Ministry of Health and Social Welfare"},
	{ID: "m13", Name: "Ministry of Interior"},
	{ID: "m14", Name: "Ministry of Justice"},
	{ID: "m15", Name: "Ministry of Labour and Employment"},
	{ID: "m16", Name: "Ministry of Sports Development"},
	{ID: "m17", Name: "Ministry of Youth Development"},
	{ID: "m18", Name: "Ministry of Transportation"},
	{ID: "m19", Name: "Ministry of Art, Culture, and Creative Economy"},
	{ID: "m20", Name: "Ministry of Energy"},
	{ID: "m21", Name: "Ministry of police Affairs"},
	{ID: "m22", Name: "Ministry of Science, Technology and Innovation"},
	{ID: "m23", Name: "Ministry of Marine and Blue Economy"},
	{ID: "m24", Name: "Ministry of Mines and Steel Development"},
	{ID: "m25", Name: "Ministry of Petroleum Resources"},
	{ID: "m26", Name: "Ministry of Special Duties"},
	{ID: "m27", Name: "Ministry of Water Resources Development"},
	{ID: "m28", Name: "Ministry of Women Affairs"},
	{ID: "m29", Name: "Ministry of Tourism"},
	{ID: "m30", Name: "Ministry of Water Resources and Sanitation"},
	{ID: "m31", Name: "Ministry of Solid Minerals Development"},
	{ID: "m32", Name: "Ministry of Industry, Trade, and Investment"},
	{ID: "m33", Name: "Ministry of Agriculture and Rural Development"},
	{ID: "m34", Name: "Ministry of Communications, Innovation, and Digital Economy"},
	{ID: "m35", Name: "Ministry of Niger Delta Affairs"},
	{ID: "m36", Name: "Ministry of Federal Capital Territory (FCT)"},
}

var states = []model.State{
	{ID: "s1", Name: "Lagos"},
	{ID: "s2", Name: "Kano"},
	{ID: "s3", Name: "Rivers"},
	{ID: "s4", Name: "Abuja (FCT)"},
	{ID: "s5", Name: "Oyo"},
	{ID: "s6", Name: "Kaduna"},
	{ID: "s7", Name: "Enugu"},
	{ID: "s8", Name: "Ondo"},
	{ID: "s9", Name: "Imo"},
	{ID: "s10", Name: "Ekiti"},
	{ID: "s11", Name: "Delta"},
	{ID: "s12", Name: "Edo"},
	{ID: "s13", Name: "Osun"},
	{ID: "s14", Name: "kaduna"},
	{ID: "s15", Name: "Bayelsa"},
	{ID: "s16", Name: "Benue"},
	{ID: "s17", Name: "Kogi"},
	{ID: "s18", Name: "Kwara"},
	{ID: "s19", Name: "Kano"},
	{ID: "s20", Name: "Ogun"},
	{ID: "s21", Name: "Kastina"},
	{ID: "s22", Name: "Niger"},
	{ID: "s23", Name: "Plateau"},
	{ID: "s24", Name: "Nasarawa"},
	{ID: "s25", Name: "Sokoto"},
	{ID: "s26", Name: "Taraba"},
	{ID: "s27", Name: "Yobe"},
	{ID: "s28", Name: "Zamfara"},
	{ID: "s29", Name: "Jigawa"},
	{ID: "s30", Name: "Bauchi"},
	{ID: "s31", Name: "Adamawa"},
	{ID: "s32", Name: "Benue"},
	{ID: "s33", Name: "Borno"},
	{ID: "s34", Name: "Cross River"},
	{ID: "s35", Name: "Abia"},
	{ID: "s36", Name: "Ebonyi"},
	{ID: "s37", Name: "Gombe"},
}

var (
	ministryByID = make(map[string]model.Ministry, len(ministries))
	stateByID    = make(map[string]model.State, len(states))
)

func init() {
	for _, m := range ministries {
		ministryByID[m.ID] = m
	}
	for _, s := range states {
		stateByID[s.ID] = s
	}
}

// Ministries は省庁一覧を返す（呼び出し側での変更禁止）。
func Ministries() []model.Ministry {
	return ministries
}

// States は州一覧を返す（呼び出し側での変更禁止）。
func States() []model.State {
	return states
}

// MinistryByID は ID で省庁を検索する。
func MinistryByID(id string) (model.Ministry, bool) {
	m, ok := ministryByID[id]
	return m, ok
}

// StateByID は ID で州を検索する。
func StateByID(id string) (model.State, bool) {
	s, ok := stateByID[id]
	return s, ok
}
