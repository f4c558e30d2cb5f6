package resources

// Static resource bodies, kept word for word so clients relying on them keep
// working.

const darijaGuide = `=== GUIDE DARIJA ECCBC ===

PRODUITS:
• كوكا / كوكا كولا = Coca-Cola
• فانتا = Fanta
• سبرايت = Sprite
• الحمرا = La rouge (Coca-Cola)
• الصفرا = La jaune (Fanta citron)
• البرتقالية = L'orange (Fanta orange)

QUANTITÉS:
• واحد=1, جوج=2, تلاتة=3, ربعة=4, خمسة=5
• ستة=6, سبعة=7, تمنية=8, تسعة=9, عشرة=10
• صندوق/صناديق = caisse(s)

EXPRESSIONS:
• بغيت = Je veux
• عطيني = Donne-moi
• شحال = Combien
• كاين = Disponible
• واش كاين = Est-ce qu'il y a
• بزاف = Beaucoup
• شوية = Un peu
`

const businessContext = `=== CONTEXTE ECCBC ===

MISSION: B2B embouteilleur Coca-Cola Maroc
- Vente aux commerçants via WhatsApp
- Support multilingue (FR/AR/EN)
- Livraison 24-48h partout au Maroc

PROCESSUS:
1. Client exprime besoin librement
2. Clarification si nécessaire
3. Vérification stock temps réel
4. Confirmation prix/délai
5. Création commande automatique

UNITÉS: Caisses de 6/12/24, Prix en MAD
FORMATS: 33cl, 50cl, 1L, 1.5L

TONE: Professionnel, chaleureux, respecter langue client
`
