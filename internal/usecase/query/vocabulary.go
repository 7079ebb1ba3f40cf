package query

import (
	"regexp"

	"github.com/munwalk/dialog-ai/internal/domain/entities"
)

// The classifiers in this package are driven by the fixed vocabulary tables
// below, compiled once at init. Pattern tables follow prefix-anchored
// matching: each pattern is applied from the start of the token.

// compileAnchored compiles patterns so they must match from the start of the
// input, mirroring prefix matching
func compileAnchored(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile("^(?:" + p + ")")
	}
	return compiled
}

func compile(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// Tokens matching any of these patterns carry no search content: date and
// time words, bare meeting words, interrogatives, verb endings, particles,
// demonstratives, degree adverbs, connectives, request verbs, filler nouns.
var stopPatterns = compileAnchored([]string{
	// date and time expressions
	`(오늘|어제|모레|그제|내일).*(은|는|에|의|도|만)?$`,
	`(이번주|지난주|다음주|저번주).*(은|는|에|의|도|만)?$`,
	`(이번달|지난달|다음달|저번달).*(은|는|에|의|도|만)?$`,
	`(최근|요즘|근래|최근에|요즘에).*(은|는|에|의)?$`,
	`(올해|작년|내년|재작년).*(은|는|에|의)?$`,
	`(이번|지난|다음|저번|그|이|저).*(주|달|년|해)$`,

	// meeting words standing alone
	`(회의|미팅|회의록|세미나|워크샵)(가|이|은|는|을|를|에|의|있었|있나|였|인)?$`,

	// status and completion words
	`(예정|완료|진행|끝난|지난|과거|미래).*(된|되어|이|인|의)?$`,
	`(진행중|진행|완료|예정|끝).*(이|인)?$`,

	// interrogatives, every inflection
	`(뭐|무엇|무슨|어떤|어느).*(가|를|에|야|지|야|였지|였어|있었지|인지)?$`,
	`(언제|어디|누가|누구|왜|어떻게|어찌).*(가|를|에|서|인지)?$`,
	`(몇|얼마|어느).*(개|명|번|시|분|일|인지)?$`,

	// verb and adjective endings across tenses
	`.+(었어|었나|었니|었는지|었을까|었을|었던)$`,
	`.+(있어|있나|있니|있는지|있을까|있을|있는|있던)$`,
	`.+(했어|했나|했니|했는지|했을까|했을|했던|함)$`,
	`.+(이야|이니|인지|일까|인가|이었|이었어)$`,
	`.+(하는|하니|할까|할지|하지|한|하던)$`,
	`.+(되는|되니|될까|될지|되지|된|되던)$`,
	`.+(나|니|지|까|가|냐|냐고)$`,
	`.+(개야|번이야|거야|거니|뭐야|뭔가|뭐지|있어)$`,

	// duration expressions
	`(동안|사이|중|때|무렵|경|쯤|간|시|분|초)$`,
	`(년|월|일|주).*(간|동안|사이|중|에|에는|에도)?$`,

	// particles
	`.+(가|이|은|는|을|를|에|의|와|과|로|으로|부터|까지|만|도|조차|마저|부터|한테|께|에게)$`,
	`.+(라고|이라고|라는|이라는|처럼|같이|마냥|듯이|대로)$`,
	`.+(에서|에게|한테서|로부터)$`,
	`.+(동안|사이|중|까지)$`,

	// demonstratives and pronouns
	`(이|그|저|요|저것|이것|그것).*(가|이|은|는|을|를)?$`,
	`(여기|거기|저기|어디).*(서|에|로|가)?$`,
	`(이렇게|그렇게|저렇게|어떻게)$`,

	// degree and manner adverbs
	`(좀|약간|조금|많이|아주|완전|정말|진짜|매우|꽤|제법|대단히|상당히|굉장히|엄청|너무|되게|무척|퍽|참)$`,
	`(아마|혹시|만약|절대|결코|전혀|별로)$`,
	`(빨리|천천히|갑자기|슬슬|서서히)$`,

	// connectives and acknowledgements
	`(그리고|그러나|하지만|그런데|근데|그래서|따라서|그러므로|그렇지만|그치만)$`,
	`(그럼|그래|그치|맞아|맞지|응|네|예|아니)$`,

	// request verbs
	`(찾아|알려|보여|말해|설명|가르쳐|검색|얘기|이야기).*(줘|주세요|봐|주|줄래|주실래)?$`,
	`(줘|아줘|해줘)$`,

	// existence and state verbs
	`(있|없|계시).+(어|었어|나|니|을까|는지|던|다|십니까)$`,
	`(있어|없어|없나|없니)$`,
	`(하나|둘|셋|한개|두개|몇개).*(밖에|만|뿐)?$`,

	// conjecture endings
	`(거|것|게).*(야|인가|인지|냐|까)?$`,
	`(건가|건지|거나|거든|거야|걸까)$`,

	// recollection endings
	`.+(였더라|였지|더라|였나|였어|였는지|었더라|었지)$`,
	`(기억|생각).*(나|안나|못|해|하니)?$`,

	// remaining filler words
	`(관련|대해|관해|대한|관한)$`,
	`(내용|정보|사항|항목|자료|데이터)$`,
	`(전부|모두|다|전체|모든|각|모)$`,
	`(하나|둘|셋|여러|몇몇)$`,
	`(위해|위한|대로|만큼|처럼)$`,
})

// Sentence-final tense endings override explicit state keywords
var pastTensePatterns = compile([]string{
	`했어\??$`, `있었어\??$`, `였어\??$`, `더라\??$`,
	`했나\??$`, `있었나\??$`, `였나\??$`, `됐어\??$`,
	`했는지\??$`, `있었는지\??$`, `였던\s`, `했던\s`,
})

var futureTensePatterns = compile([]string{
	`할\s*거야\??$`, `할까\??$`, `있을까\??$`, `될까\??$`,
	`할\s*예정`, `있을\s*예정`,
})

// Explicit state keyword sets, checked in this order after tense patterns
var stateKeywords = []struct {
	status entities.MeetingStatus
	words  []string
}{
	{entities.MeetingStatusScheduled, []string{"예정", "예정된", "앞으로", "다가오는", "예약", "예약된", "미래", "다음"}},
	{entities.MeetingStatusCompleted, []string{"완료", "완료된", "끝난", "지난", "과거", "했던", "했었던"}},
	{entities.MeetingStatusRecording, []string{"진행중", "진행 중", "현재", "녹화중", "녹화 중", "진행되는", "하는 중"}},
	{entities.MeetingStatusCancelled, []string{"취소", "취소된", "무산", "무산된"}},
}

// Any of these marks the query as in-domain regardless of other signals
var meetingDomainWords = []string{
	"회의", "미팅", "meeting", "회의록", "논의", "안건",
	"참석", "참여", "발표", "설명", "결정", "합의",
	"검토", "승인", "요약", "discussion", "세미나", "워크샵",
}

var taskDomainWords = []string{"할 일", "할일", "task", "업무", "맡은", "담당"}

// Short queries starting with one of these are follow-ups to prior context
var contextPronouns = []string{"그", "저", "이", "거기", "그거", "저거", "이거"}

var offTopicWords = []string{
	"안녕", "안녕하세요", "hello", "hi", "뭐해", "심심",
	"날씨", "요리", "맛집", "영화", "음악", "게임",
	"뉴스", "스포츠", "주식", "부동산", "연애", "건강",
	"농담", "사랑", "운동", "여행", "레시피", "음식",
}

var paginationWords = []string{
	"나머지", "나머지도", "남은", "남은거", "더", "더보기", "더보여",
	"더있어", "더줘", "더알려", "추가", "추가로", "계속", "이어서",
	"다음", "다른", "또", "그외", "외", "그밖", "더있나", "더있니",
	"또뭐", "또있어", "나머", "남머", "나미", "더보",
	"줘봐", "줘", "보여줘", "보여", "알려줘", "알려",
}

var paginationPatterns = compile([]string{
	`나머.*`, `남은.*`, `더.*[보줘있알려]`, `추가.*`,
	`계속|이어서|다음`, `또.*[있뭐어]`, `그\s*외`,
	`더\s*[보줘]`, `줘\s*봐`, `보여\s*줘`, `알려\s*줘`,
})

var searchIntentWords = []string{
	"회의", "미팅", "회의록", "찾아", "검색", "알려", "보여",
	"있어", "있었어", "있나", "있니", "뭐", "어떤", "어디",
	"meeting", "search", "find",
}

var countWords = []string{"몇", "개수", "횟수", "번", "총"}

// Listing vocabulary for the list-style bypass
var listRequestWords = []string{"뭐", "목록", "리스트", "전체", "모든", "다", "보여", "알려", "있어", "있나", "있니"}

var meetingWords = []string{"회의", "미팅"}
