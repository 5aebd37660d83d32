package domain

// spreadCatalog holds the eight supported layouts. Position coordinates are
// percentages of the layout area, consumed only by the presentation layer.
var spreadCatalog = []SpreadConfig{
	{
		Type:            SpreadSingle,
		Name:            "Daily Reading",
		NameThai:        "ดูดวงรายวัน",
		Description:     "Draw a single card for daily guidance and insight",
		DescriptionThai: "จั่วไพ่ 1 ใบเพื่อรับคำแนะนำและข้อมูลเชิงลึกสำหรับวันนี้",
		CardCount:       1,
		Difficulty:      DifficultyBeginner,
		Icon:            "🌅",
		Positions: []SpreadPosition{
			{Index: 0, Label: "Today's Message", LabelThai: "ข้อความวันนี้", Description: "What energy or guidance do you need today?", X: 50, Y: 50},
		},
	},
	{
		Type:            SpreadTwoChoices,
		Name:            "Two Choices",
		NameThai:        "สองทางเลือก",
		Description:     "Compare two options or perspectives",
		DescriptionThai: "เปรียบเทียบสองทางเลือกหรือมุมมอง",
		CardCount:       2,
		Difficulty:      DifficultyBeginner,
		Icon:            "⚖️",
		Positions: []SpreadPosition{
			{Index: 0, Label: "Option A", LabelThai: "ทางเลือก A", Description: "The first path or perspective", X: 35, Y: 50},
			{Index: 1, Label: "Option B", LabelThai: "ทางเลือก B", Description: "The second path or perspective", X: 65, Y: 50},
		},
	},
	{
		Type:            SpreadPastPresentFuture,
		Name:            "Past-Present-Future",
		NameThai:        "อดีต-ปัจจุบัน-อนาคต",
		Description:     "See how past influences lead to current situation and future outcome",
		DescriptionThai: "ดูว่าอดีตมีผลต่อสถานการณ์ปัจจุบันและผลลัพธ์ในอนาคตอย่างไร",
		CardCount:       3,
		Difficulty:      DifficultyBeginner,
		Icon:            "⏳",
		Positions: []SpreadPosition{
			{Index: 0, Label: "Past", LabelThai: "อดีต", Description: "Past influences and foundations", X: 25, Y: 50},
			{Index: 1, Label: "Present", LabelThai: "ปัจจุบัน", Description: "Current situation and energy", X: 50, Y: 50},
			{Index: 2, Label: "Future", LabelThai: "อนาคต", Description: "Likely outcome and direction", X: 75, Y: 50},
		},
	},
	{
		Type:            SpreadSituationChallengeAdvice,
		Name:            "Situation-Challenge-Advice",
		NameThai:        "สถานการณ์-ความท้าทาย-คำแนะนำ",
		Description:     "Understand your situation, identify challenges, and receive guidance",
		DescriptionThai: "เข้าใจสถานการณ์ ระบุความท้าทาย และรับคำแนะนำ",
		CardCount:       3,
		Difficulty:      DifficultyBeginner,
		Icon:            "🎯",
		Positions: []SpreadPosition{
			{Index: 0, Label: "Situation", LabelThai: "สถานการณ์", Description: "The current situation", X: 25, Y: 50},
			{Index: 1, Label: "Challenge", LabelThai: "ความท้าทาย", Description: "The obstacle or challenge", X: 50, Y: 50},
			{Index: 2, Label: "Advice", LabelThai: "คำแนะนำ", Description: "Guidance and recommended action", X: 75, Y: 50},
		},
	},
	{
		Type:            SpreadHorseshoe,
		Name:            "Horseshoe Spread",
		NameThai:        "เกือกม้า",
		Description:     "A comprehensive 5-card spread for deeper insight",
		DescriptionThai: "การดูดวง 5 ใบแบบครอบคลุมเพื่อข้อมูลเชิงลึก",
		CardCount:       5,
		Difficulty:      DifficultyIntermediate,
		Icon:            "🔮",
		Positions: []SpreadPosition{
			{Index: 0, Label: "Past", LabelThai: "อดีต", Description: "Past influences", X: 20, Y: 70},
			{Index: 1, Label: "Present", LabelThai: "ปัจจุบัน", Description: "Current situation", X: 35, Y: 40},
			{Index: 2, Label: "Hidden Influences", LabelThai: "อิทธิพลที่ซ่อนอยู่", Description: "Unseen factors", X: 50, Y: 30},
			{Index: 3, Label: "Advice", LabelThai: "คำแนะนำ", Description: "Recommended approach", X: 65, Y: 40},
			{Index: 4, Label: "Outcome", LabelThai: "ผลลัพธ์", Description: "Likely outcome", X: 80, Y: 70},
		},
	},
	{
		Type:            SpreadChakra,
		Name:            "Seven Chakras",
		NameThai:        "เจ็ดจักระ",
		Description:     "Check the energy balance of your seven chakras",
		DescriptionThai: "ตรวจสอบความสมดุลพลังงานของเจ็ดจักระ",
		CardCount:       7,
		Difficulty:      DifficultyIntermediate,
		Icon:            "🧘",
		Positions: []SpreadPosition{
			{Index: 0, Label: "Root Chakra", LabelThai: "จักระฐาน (มูลาธาร)", Description: "Foundation, security, survival", X: 50, Y: 90},
			{Index: 1, Label: "Sacral Chakra", LabelThai: "จักระอุทร (สวาธิษฐาน)", Description: "Creativity, sexuality, emotions", X: 50, Y: 75},
			{Index: 2, Label: "Solar Plexus", LabelThai: "จักระสุริยะ (มณีปุระ)", Description: "Personal power, confidence", X: 50, Y: 60},
			{Index: 3, Label: "Heart Chakra", LabelThai: "จักระหัวใจ (อนาหตะ)", Description: "Love, compassion, connection", X: 50, Y: 45},
			{Index: 4, Label: "Throat Chakra", LabelThai: "จักระลำคอ (วิสุทธิ)", Description: "Communication, truth, expression", X: 50, Y: 30},
			{Index: 5, Label: "Third Eye", LabelThai: "จักระจิกนา (อัชนา)", Description: "Intuition, insight, wisdom", X: 50, Y: 15},
			{Index: 6, Label: "Crown Chakra", LabelThai: "จักระมงกุฏ (สหัสรารา)", Description: "Spirituality, consciousness, enlightenment", X: 50, Y: 5},
		},
	},
	{
		Type:            SpreadCelticCross,
		Name:            "Celtic Cross",
		NameThai:        "ไม้กางเขนเซลติก",
		Description:     "The most comprehensive traditional spread",
		DescriptionThai: "การดูดวงแบบครอบคลุมที่สุดแบบดั้งเดิม",
		CardCount:       10,
		Difficulty:      DifficultyAdvanced,
		Icon:            "✨",
		Positions: []SpreadPosition{
			{Index: 0, Label: "Present", LabelThai: "ปัจจุบัน", Description: "Current situation", X: 40, Y: 50},
			{Index: 1, Label: "Challenge", LabelThai: "ความท้าทาย", Description: "Immediate challenge or crossing influence", X: 40, Y: 50, Rotation: 90},
			{Index: 2, Label: "Foundation", LabelThai: "รากฐาน", Description: "Basis of the situation", X: 40, Y: 70},
			{Index: 3, Label: "Recent Past", LabelThai: "อดีตที่ผ่านมา", Description: "Recent events", X: 20, Y: 50},
			{Index: 4, Label: "Possible Future", LabelThai: "อนาคตที่เป็นไปได้", Description: "Best possible outcome", X: 40, Y: 30},
			{Index: 5, Label: "Near Future", LabelThai: "อนาคตใกล้", Description: "What's coming soon", X: 60, Y: 50},
			{Index: 6, Label: "Self", LabelThai: "ตัวคุณ", Description: "Your attitude and approach", X: 75, Y: 85},
			{Index: 7, Label: "Environment", LabelThai: "สิ่งแวดล้อม", Description: "External influences", X: 75, Y: 65},
			{Index: 8, Label: "Hopes/Fears", LabelThai: "ความหวัง/ความกลัว", Description: "Inner emotions", X: 75, Y: 45},
			{Index: 9, Label: "Outcome", LabelThai: "ผลลัพธ์", Description: "Final outcome", X: 75, Y: 25},
		},
	},
	{
		Type:            SpreadAstrological,
		Name:            "Astrological Spread",
		NameThai:        "โหราศาสตร์",
		Description:     "A comprehensive spread based on the 12 houses of astrology",
		DescriptionThai: "การดูดวงแบบครอบคลุมตามบ้าน 12 หลังของโหราศาสตร์",
		CardCount:       21,
		Difficulty:      DifficultyAdvanced,
		Icon:            "♈",
		Positions: []SpreadPosition{
			{Index: 0, Label: "Querent (Center)", LabelThai: "ผู้ถาม (ศูนย์กลาง)", Description: "The essence of you", X: 50, Y: 50},
			{Index: 1, Label: "1st House - Self", LabelThai: "บ้านที่ 1 - ตัวตน", Description: "Identity, appearance, first impressions", X: 75, Y: 50},
			{Index: 2, Label: "2nd House - Possessions", LabelThai: "บ้านที่ 2 - ทรัพย์สิน", Description: "Money, values, resources", X: 73, Y: 65},
			{Index: 3, Label: "3rd House - Communication", LabelThai: "บ้านที่ 3 - การสื่อสาร", Description: "Communication, siblings, short trips", X: 65, Y: 73},
			{Index: 4, Label: "4th House - Home", LabelThai: "บ้านที่ 4 - บ้าน", Description: "Home, family, roots", X: 50, Y: 75},
			{Index: 5, Label: "5th House - Creativity", LabelThai: "บ้านที่ 5 - ความคิดสร้างสรรค์", Description: "Creativity, romance, children", X: 35, Y: 73},
			{Index: 6, Label: "6th House - Health", LabelThai: "บ้านที่ 6 - สุขภาพ", Description: "Health, work, daily routines", X: 27, Y: 65},
			{Index: 7, Label: "7th House - Partnerships", LabelThai: "บ้านที่ 7 - ความสัมพันธ์", Description: "Partnerships, marriage, contracts", X: 25, Y: 50},
			{Index: 8, Label: "8th House - Transformation", LabelThai: "บ้านที่ 8 - การเปลี่ยนแปลง", Description: "Transformation, shared resources, mysteries", X: 27, Y: 35},
			{Index: 9, Label: "9th House - Philosophy", LabelThai: "บ้านที่ 9 - ปรัชญา", Description: "Philosophy, travel, higher learning", X: 35, Y: 27},
			{Index: 10, Label: "10th House - Career", LabelThai: "บ้านที่ 10 - อาชีพ", Description: "Career, public image, ambitions", X: 50, Y: 25},
			{Index: 11, Label: "11th House - Community", LabelThai: "บ้านที่ 11 - ชุมชน", Description: "Friends, groups, aspirations", X: 65, Y: 27},
			{Index: 12, Label: "12th House - Subconscious", LabelThai: "บ้านที่ 12 - จิตใต้สำนึก", Description: "Subconscious, spirituality, hidden enemies", X: 73, Y: 35},
			{Index: 13, Label: "Sun - Vitality", LabelThai: "ดวงอาทิตย์ - พลัง", Description: "Core vitality and life force", X: 85, Y: 50},
			{Index: 14, Label: "Moon - Emotions", LabelThai: "ดวงจันทร์ - อารมณ์", Description: "Emotional state", X: 15, Y: 50},
			{Index: 15, Label: "Mercury - Mind", LabelThai: "ดาวพุธ - จิตใจ", Description: "Mental processes", X: 50, Y: 15},
			{Index: 16, Label: "Venus - Love", LabelThai: "ดาวศุกร์ - ความรัก", Description: "Love and relationships", X: 50, Y: 85},
			{Index: 17, Label: "Mars - Action", LabelThai: "ดาวอังคาร - การกระทำ", Description: "Drive and action", X: 80, Y: 30},
			{Index: 18, Label: "Jupiter - Expansion", LabelThai: "ดาวพฤหัส - การขยาย", Description: "Growth and expansion", X: 20, Y: 30},
			{Index: 19, Label: "Saturn - Structure", LabelThai: "ดาวเสาร์ - โครงสร้าง", Description: "Limitations and structure", X: 80, Y: 70},
			{Index: 20, Label: "Spirit - Guidance", LabelThai: "จิตวิญญาณ - คำแนะนำ", Description: "Spiritual guidance", X: 20, Y: 70},
		},
	},
}
