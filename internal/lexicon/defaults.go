package lexicon

import "PolicyTone/internal/domain/models"

// The built-in dictionary targets Bank of Korea Monetary Policy Board
// minutes. It is a versioned design artifact: changing a weight changes
// every downstream tone index, so edits belong in code review, not config.

var defaultHawkish = []models.LexiconEntry{
	// core policy vocabulary
	{Term: "인상", Weight: 2.0, Category: "policy", Description: "금리 인상"},
	{Term: "긴축", Weight: 2.0, Category: "policy", Description: "긴축 정책"},
	{Term: "정상화", Weight: 1.5, Category: "policy", Description: "통화정책 정상화"},
	{Term: "선제적", Weight: 1.2, Category: "policy", Description: "선제적 대응"},

	// inflation pressure
	{Term: "물가상승", Weight: 1.8, Category: "inflation", Description: "물가 상승 압력"},
	{Term: "상방압력", Weight: 1.8, Category: "inflation", Description: "물가 상방 압력"},
	{Term: "상방위험", Weight: 1.7, Category: "inflation", Description: "상방 위험"},
	{Term: "상방리스크", Weight: 1.7, Category: "inflation", Description: "상방 리스크"},
	{Term: "인플레이션", Weight: 1.2, Category: "inflation", Description: "인플레이션 압력"},
	{Term: "기대인플레이션", Weight: 1.5, Category: "inflation", Description: "기대인플레이션 상승"},
	{Term: "물가불안", Weight: 1.6, Category: "inflation", Description: "물가 불안정"},
	{Term: "물가오름세", Weight: 1.5, Category: "inflation", Description: "물가 오름세"},

	// overheating
	{Term: "과열", Weight: 1.8, Category: "growth", Description: "경기 과열"},
	{Term: "견조", Weight: 1.3, Category: "growth", Description: "견조한 성장"},
	{Term: "호조", Weight: 1.2, Category: "growth", Description: "호조세"},
	{Term: "확대", Weight: 0.8, Category: "growth", Description: "확대 기조"},
	{Term: "개선", Weight: 0.7, Category: "growth", Description: "경기 개선"},

	// financial imbalance
	{Term: "금융불균형", Weight: 2.0, Category: "financial_stability", Description: "금융 불균형"},
	{Term: "가계부채", Weight: 1.8, Category: "financial_stability", Description: "가계부채 우려"},
	{Term: "부채증가", Weight: 1.7, Category: "financial_stability", Description: "부채 증가"},
	{Term: "부채누증", Weight: 1.8, Category: "financial_stability", Description: "부채 누증"},
	{Term: "주택가격", Weight: 1.3, Category: "financial_stability", Description: "주택가격 상승"},
	{Term: "부동산", Weight: 1.0, Category: "financial_stability", Description: "부동산 가격"},
	{Term: "레버리지", Weight: 1.5, Category: "financial_stability", Description: "레버리지 확대"},
	{Term: "자산가격", Weight: 1.2, Category: "financial_stability", Description: "자산가격 상승"},

	// liquidity
	{Term: "유동성축소", Weight: 1.6, Category: "liquidity", Description: "유동성 축소"},
	{Term: "유동성과잉", Weight: 1.5, Category: "liquidity", Description: "유동성 과잉"},
	{Term: "완화축소", Weight: 1.8, Category: "liquidity", Description: "완화 정도 축소"},

	// strong signals
	{Term: "빅스텝", Weight: 2.5, Category: "policy", Description: "50bp 인상"},
	{Term: "추가인상", Weight: 2.2, Category: "policy", Description: "추가 금리 인상"},
}

var defaultDovish = []models.LexiconEntry{
	// core policy vocabulary
	{Term: "인하", Weight: 2.0, Category: "policy", Description: "금리 인하"},
	{Term: "완화", Weight: 1.8, Category: "policy", Description: "완화 기조"},
	{Term: "동결", Weight: 1.2, Category: "policy", Description: "금리 동결"},
	{Term: "유지", Weight: 0.8, Category: "policy", Description: "금리 유지"},
	{Term: "지지", Weight: 1.0, Category: "policy", Description: "경기 지지"},

	// slowdown
	{Term: "둔화", Weight: 1.8, Category: "growth", Description: "경기 둔화"},
	{Term: "부진", Weight: 1.7, Category: "growth", Description: "경기 부진"},
	{Term: "위축", Weight: 1.8, Category: "growth", Description: "경기 위축"},
	{Term: "침체", Weight: 2.0, Category: "growth", Description: "경기 침체"},
	{Term: "하락", Weight: 1.3, Category: "growth", Description: "성장 하락"},
	{Term: "감소", Weight: 1.2, Category: "growth", Description: "성장 감소"},
	{Term: "약화", Weight: 1.5, Category: "growth", Description: "성장세 약화"},
	{Term: "미약", Weight: 1.4, Category: "growth", Description: "미약한 성장"},
	{Term: "저조", Weight: 1.4, Category: "growth", Description: "저조한 성장"},

	// downside risk
	{Term: "하방위험", Weight: 1.8, Category: "risk", Description: "하방 위험"},
	{Term: "하방리스크", Weight: 1.8, Category: "risk", Description: "하방 리스크"},
	{Term: "하방압력", Weight: 1.7, Category: "risk", Description: "하방 압력"},
	{Term: "하회", Weight: 1.3, Category: "risk", Description: "목표 하회"},

	// uncertainty
	{Term: "불확실성", Weight: 1.5, Category: "risk", Description: "불확실성"},
	{Term: "불확실", Weight: 1.4, Category: "risk", Description: "불확실"},
	{Term: "리스크", Weight: 1.0, Category: "risk", Description: "리스크"},
	{Term: "우려", Weight: 1.2, Category: "risk", Description: "우려"},
	{Term: "변동성", Weight: 1.1, Category: "risk", Description: "변동성"},

	// price stability
	{Term: "물가안정", Weight: 1.5, Category: "inflation", Description: "물가 안정"},
	{Term: "안정세", Weight: 1.3, Category: "inflation", Description: "물가 안정세"},
	{Term: "둔화세", Weight: 1.4, Category: "inflation", Description: "물가 둔화세"},

	// weak demand
	{Term: "수요부진", Weight: 1.6, Category: "demand", Description: "수요 부진"},
	{Term: "소비부진", Weight: 1.5, Category: "demand", Description: "소비 부진"},
	{Term: "투자부진", Weight: 1.5, Category: "demand", Description: "투자 부진"},
	{Term: "수출부진", Weight: 1.4, Category: "demand", Description: "수출 부진"},

	// external conditions
	{Term: "대외불확실성", Weight: 1.6, Category: "external", Description: "대외 불확실성"},
	{Term: "대외여건", Weight: 1.0, Category: "external", Description: "대외 여건"},
	{Term: "글로벌불확실성", Weight: 1.5, Category: "external", Description: "글로벌 불확실성"},

	// delayed recovery
	{Term: "회복지연", Weight: 1.7, Category: "growth", Description: "회복 지연"},
	{Term: "지연", Weight: 1.2, Category: "growth", Description: "지연"},
}

var defaultHawkishNgrams = [][]string{
	{"물가", "상승", "압력"},
	{"물가", "상방", "압력"},
	{"금융", "불균형", "누증"},
	{"가계", "부채", "증가"},
	{"통화정책", "완화", "정도", "축소"},
	{"주택", "가격", "상승"},
	{"자산", "가격", "상승"},
	{"기대", "인플레이션", "상승"},
	{"수요", "압력", "확대"},
	{"경기", "과열", "우려"},
}

var defaultDovishNgrams = [][]string{
	{"성장", "경로", "하방", "리스크"},
	{"수요", "압력", "약화"},
	{"경기", "회복세", "둔화"},
	{"대외", "여건", "불확실성"},
	{"물가", "안정", "목표", "하회"},
	{"소비", "심리", "위축"},
	{"투자", "심리", "위축"},
	{"수출", "증가세", "둔화"},
	{"성장", "모멘텀", "약화"},
	{"고용", "상황", "악화"},
}

// Default builds the built-in dictionary. The built-in entries are
// validated at construction; a bad default is a programming error.
func Default() *Lexicon {
	l := New()
	for _, e := range defaultHawkish {
		if err := l.AddTerm(e.Term, models.Hawkish, e.Weight, e.Category, e.Description); err != nil {
			panic(err)
		}
	}
	for _, e := range defaultDovish {
		if err := l.AddTerm(e.Term, models.Dovish, e.Weight, e.Category, e.Description); err != nil {
			panic(err)
		}
	}
	for _, p := range defaultHawkishNgrams {
		l.AddNgram(models.Hawkish, p...)
	}
	for _, p := range defaultDovishNgrams {
		l.AddNgram(models.Dovish, p...)
	}
	return l
}
