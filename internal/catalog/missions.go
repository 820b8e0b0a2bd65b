package catalog

import "cityhunt/internal/models"

// Missions is the fixed bilingual catalog for the Zurich city game. The text
// must stay byte-identical to what earlier rounds shipped, since clients and
// printed material reference it.
var Missions = []models.Mission{
	{Number: 1, TitleDe: "BRUNNEN", DescriptionDe: "Aus einem öffentlichen Brunnen Wasser trinken.", TitleEn: "FOUNTAIN", DescriptionEn: "Drink water from a public fountain."},
	{Number: 2, TitleDe: "DINGE", DescriptionDe: "Vier verschiedene Gegenstände auf ein Bild bringen, die mit eurem Teambuchstaben beginnen. Im Chat die 4 Gegenstände benennen.", TitleEn: "ITEMS", DescriptionEn: "Include four items in one photo that all start with the first letter of your team name. Name the four items in the chat."},
	{Number: 3, TitleDe: "KLEIDERTAUSCH", DescriptionDe: "Zwei Teammitglieder tauschen für das Foto ein Kleidungsstück (z.B. Jacke) und machen gemeinsam ein Bild.", TitleEn: "CLOTHES SWAP", DescriptionEn: "Two team members swap one piece of clothing (e.g. jacket) and take a photo together."},
	{Number: 4, TitleDe: "FLUSS", DescriptionDe: "Einen Fuss in die Limmat stecken.", TitleEn: "RIVER", DescriptionEn: "Put one foot into the Limmat river."},
	{Number: 5, TitleDe: "FUSSGÄNGER", DescriptionDe: "Ein TM über den Fussgänger Streifen tragen.", TitleEn: "PEDESTRIAN", DescriptionEn: "Carry one team member across a pedestrian crossing."},
	{Number: 6, TitleDe: "GLEICHGEWICHT", DescriptionDe: "Während einer gesamten Liftfahrt bis zum Stillstand auf nur einem Fuss stehen, ohne die Wände zu berühren.", TitleEn: "BALANCE", DescriptionEn: "During an entire elevator ride (until it stops), stand on one foot without touching the walls."},
	{Number: 7, TitleDe: "GRAFFITI", DescriptionDe: "Ein Graffiti / Tag finden. Alle TM müssen dies der Reihe nach laut vorlesen, am Schluss alle zusammen gleichzeitig „Respect!“ sagen.", TitleEn: "GRAFFITI", DescriptionEn: "Find a graffiti or tag. Each team member reads it out loud in turn, then at the end everyone says “Respect!” together."},
	{Number: 8, TitleDe: "HOROSKOP", DescriptionDe: "Aus einer Gratiszeitung das Horoskop eines TM vorlesen. Während des Vorlesens pantomimisch zeigen, wie alles tatsächlich perfekt zutrifft.", TitleEn: "HOROSCOPE", DescriptionEn: "From a free newspaper, read the horoscope of one team member. While it is being read, act out how everything fits perfectly."},
	{Number: 9, TitleDe: "KUNST", DescriptionDe: "Ein Bild, das irgendwo aufgehängt ist, selbst auf einem A4-Blatt nachzeichnen, sodass die Grundzüge klar erkennbar sind. Beide Bilder nebeneinander zeigen.", TitleEn: "ART", DescriptionEn: "Choose a picture hanging somewhere and redraw it yourself on an A4 sheet so that the main features are clearly recognizable. Show both pictures side by side."},
	{Number: 10, TitleDe: "LÖWE", DescriptionDe: "Ein Bild eines Löwen in einem Buch oder einer Werbung finden und fotografieren.", TitleEn: "LION", DescriptionEn: "Find a picture of a lion in a book or advertisement and take a photo of it."},
	{Number: 11, TitleDe: "FULL TURN", DescriptionDe: "Eine 360° Video mit allen TM, aber ohne andere Personen im Video.", TitleEn: "FULL TURN", DescriptionEn: "Record a 360° video with all team members but without any other people in the video."},
	{Number: 12, TitleDe: "NANA", DescriptionDe: "Eine frei erfundene Geschichte der schwebenden blauen Figur in der Bahnhofhalle auf Englisch mit ernstem Gesicht erzählen. Dabei die Wörter „however“ und „a duck“ erwähnen. Die Figur muss im Hintergrund sein.", TitleEn: "NANA", DescriptionEn: "Invent a story about the floating blue figure in the main station hall and tell it in English with a serious face. Use the word “however” and mention “a duck”. The figure must be visible in the background."},
	{Number: 13, TitleDe: "PATRIOT", DescriptionDe: "Unter einer Schweizer Fahne zu zweit eine Strophe der Nationalhymne singen. Die Fahne muss zusehen sein.", TitleEn: "PATRIOT", DescriptionEn: "Under a Swiss flag, two team members sing one verse of the national anthem. The flag must be visible."},
	{Number: 14, TitleDe: "PRIM-TRAM", DescriptionDe: "Ein Selfie mit dem ganzen Team schiessen mit einem Tram im Hintergrund, dessen (klar ersichtliche) Nummer eine Primzahl ist.", TitleEn: "PRIME TRAM", DescriptionEn: "Take a selfie with the whole team in front of a tram whose clearly visible number is a prime number."},
	{Number: 15, TitleDe: "SPEED", DescriptionDe: "Ein TM läuft an einer Haltestelle in einen Bus oder in ein Tram und sofort durch eine andere Türe wieder raus, bevor es abfährt.", TitleEn: "SPEED", DescriptionEn: "At a stop, one team member runs into a bus or tram and immediately exits through another door before it departs."},
	{Number: 16, TitleDe: "SBB", DescriptionDe: "An einem SBB-Automaten eine Zugreise für 1 Person über CHF 300.- finden.", TitleEn: "SBB", DescriptionEn: "At a SBB ticket machine, find a train journey for 1 person costing more than CHF 300.–."},
	{Number: 17, TitleDe: "SCHÄRE STEI PAPIER", DescriptionDe: "Eine Runde Schere, Stein, Papier gegen eine fremde Person gewinnen.", TitleEn: "ROCK PAPER SCISSORS", DescriptionEn: "Win a round of rock-paper-scissors against a stranger."},
	{Number: 18, TitleDe: "STATUE", DescriptionDe: "Ein Selfie aller TM mit einer Statue im Hintergrund schiessen, wobei alle TM die Pose und den Gesichtsausdruck der Statue nachahmen.", TitleEn: "STATUE", DescriptionEn: "Take a selfie with all team members in front of a statue, imitating the pose and facial expression of the statue."},
	{Number: 19, TitleDe: "UGLY PIC", DescriptionDe: "Beim Landesmuseum ein Bild mit möglichst hässlichem Hintergrund machen. Mit beiden Händen das V-Zeichen machen.", TitleEn: "UGLY PIC", DescriptionEn: "Near the Landesmuseum, take a picture with the ugliest background possible. Make the V-sign with both hands."},
	{Number: 20, TitleDe: "VIERSPRACHIG", DescriptionDe: "Ein Plakat fotografieren, auf dem Wörter auf mindestens vier verschiedenen Sprachen zu lesen sind. Diese im Bild markieren.", TitleEn: "FOUR LANGUAGES", DescriptionEn: "Take a photo of a poster that has words in at least four different languages. Mark these words in the picture."},
	{Number: 21, TitleDe: "EXTRA CHALLENGE", DescriptionDe: "Jedes Team soll das teuerste Gericht einer Speisekarte finden. Ist dieses teurer als jenes der anderen Teams, gewinnt dieses Team die Extra Challenge.", TitleEn: "EXTRA CHALLENGE", DescriptionEn: "Each team has to find the most expensive dish on a menu. If it is more expensive than the other teams’ choice, that team wins the Extra Challenge."},
}
