package content

// DefaultContent holds the built-in copy for every editable key on the
// public page. A row in site_content overrides its key; everything else
// falls back to these values.
var DefaultContent = map[string]string{
	"hero.badge":       "אימון זוגי & נומרולוגיה",
	"hero.titleMain":   "גל פרידמן מלכה",
	"hero.titleSub":    "נומרולוגית ומאמנת זוגית",
	"hero.description": "שילוב ייחודי של אבחון נומרולוגי עמוק עם כלים פרקטיים מעולם האימון הזוגי, ליצירת תקשורת טובה יותר, הבנה וחיבור אמיתי.",

	"about.title": "אז מי אני?",
	"about.content": `גל פרידמן מלכה בת 27
נשואה לאלעד גרה בעמק יזרעאל
אני נומרולוגית ומאמנת זוגית בשיטת זוגיות מעשית של הדר זוהר.

למה בחרתי להיות מאמנת זוגיות ונומרולוגית?
נושא הזוגיות ואהבה זה הדבר שהלב שלי הכי נמשך אליו מאז שאני ילדה קטנה.
כשהכרתי את הנומרולוגיה והמפה הנומרולוגית שלי, כשהתחברתי לדרך של הנשמה שלי הבנתי יותר לעומק
שלא סתם אהבה זה חלק בלתי נפרד מחיי.
אהבה זה השיעור הכי גדול שלי, והייעוד שלי כאן ביקום.

והיום אני מקבלת לאימונים אישיים וזוגיים
גם יחידים שמתמודדים עם הרצון להיות בזוגיות
וגם עם זוגות שחווים קשיים ורוצים לקדם את מערכת היחסים שלהם.
באנו לפה ללמוד, להתפתח ולאהוב ללא תנאי ♥️
מוזמנים אליי להתחבר לאהבה ללא תנאי שקיימת בתוכם
בואו נדליק בכם את האור לחיים מאושרים ורגועים יותר ♥️`,

	"trust.testimonialsTitle": "מה מספרים עליי",

	"services.title":       "איך נוכל לעבוד ביחד?",
	"services.description": "תהליכים מדויקים המשלבים עומק רוחני ופרקטיקה יומיומית",

	"services.card0.title":       "מפה נומרולוגית אישית",
	"services.card0.description": "מפגש היכרות עמוק דרך תאריך הלידה והשם.",
	"services.card0.bullet0":     "זיהוי דפוסי התנהגות עמוקים",
	"services.card0.bullet1":     "הבנת חוזקות ואתגרים אישיים",
	"services.card0.bullet2":     "בהירות לגבי ייעוד ודרך",

	"services.card1.title":       "אימון זוגי ממוקד",
	"services.card1.description": "ליווי תהליכי שבועי ליצירת תקשורת בונה.",
	"services.card1.bullet0":     "הקניית כלי הקשבה פעילה",
	"services.card1.bullet1":     "בניית הסכמות וגבולות בריאים",
	"services.card1.bullet2":     "החזרת האינטימיות והקרבה",

	"services.card2.title":       "השילוב הייחודי",
	"services.card2.description": "מספרים שמגלים דפוסים + אימון שמייצר שינוי.",
	"services.card2.bullet0":     "קיצור תהליכים בזכות אבחון מהיר",
	"services.card2.bullet1":     "הבנת הדינמיקה בין המפות של שניכם",
	"services.card2.bullet2":     "תוכנית עבודה מעשית ומשותפת",

	"benefits.title":       "למה נומרולוגיה ואימון זוגי עובדים כל כך טוב ביחד?",
	"benefits.description": "כשמשלבים אבחון מדויק עם כלים מעשיים, התהליך הופך להיות ברור, קצר ואפקטיבי הרבה יותר.",

	"benefits.item0.title":       "זיהוי מהיר של שורש הבעיה",
	"benefits.item0.description": "במקום שבועות של שיחות בניסיון להבין \"מה לא עובד\", המפה הנומרולוגית משקפת באופן צלול את דפוסי התקשורת והטריגרים של כל אחד מכם.",
	"benefits.item1.title":       "הפיכת תובנות להסכמות",
	"benefits.item1.description": "להבין זה חשוב, אבל זה לא מספיק. כאן נכנס האימון הזוגי שלוקח את ההבנות מהמפה והופך אותן לגבולות בריאים, שגרה מיטיבה והסכמות מעשיות ליומיום.",
	"benefits.item2.title":       "צמיחה אישית מתוך הקשר",
	"benefits.item2.description": "התהליך מאפשר לכל אחד להיות הגרסה הטובה ביותר של עצמו, ולהבין איך המסע האישי שלו תורם או מאתגר את המערכת הזוגית כולה.",

	"gallery.title": "הקליניקה והאווירה",

	"contact.title":    "בואי נתחיל",
	"contact.subtitle": "השאירי פרטים לשיחת היכרות קצרה ללא עלות",
}
